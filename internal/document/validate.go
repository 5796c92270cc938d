package document

import "strconv"

// Validate checks a rocket for structural problems and returns every issue
// found. It never mutates the rocket.
func Validate(r *Rocket) []ValidationError {
	var errs []ValidationError
	if r.Name == "" {
		errs = append(errs, ValidationError{
			Category: ValCatMissingField,
			Path:     "rocket",
			Field:    "name",
			Err:      ErrMissingField,
		})
	}
	for i, s := range r.Stages {
		stagePath := s.Name
		if stagePath == "" {
			stagePath = "stage " + strconv.Itoa(i+1)
			errs = append(errs, ValidationError{
				Category: ValCatMissingField,
				Path:     stagePath,
				Field:    "name",
				Err:      ErrMissingField,
			})
		}
		for _, c := range s.Components {
			errs = append(errs, validateTree(c, stagePath)...)
		}
	}
	return errs
}

func validateTree(c Component, parent string) []ValidationError {
	b := c.Common()
	path := parent + "/" + b.Name
	var errs []ValidationError
	neg := func(field string, v float64) {
		if v < 0 {
			errs = append(errs, ValidationError{
				Category: ValCatNegative,
				Path:     path,
				Field:    field,
				Err:      ErrNegativeValue,
			})
		}
	}
	neg("mass", b.ComponentMass)
	neg("length", b.Length)
	neg("diameter", b.Diameter)

	switch c.Kind() {
	case KindBodytube:
		neg("thickness", c.(*Bodytube).Thickness)
	case KindNosecone:
		neg("thickness", c.(*Nosecone).Thickness)
	case KindFin:
		f := c.(*Fin)
		neg("root", f.Root)
		neg("tip", f.Tip)
		neg("span", f.Span)
		if _, err := f.SweepAngle(); err != nil {
			errs = append(errs, ValidationError{
				Category: ValCatGeometry,
				Path:     path,
				Field:    "sweep",
				Err:      err,
			})
		}
	case KindFinset:
		fs := c.(*Finset)
		if fs.Count() == 0 || fs.Fin() == nil {
			errs = append(errs, ValidationError{
				Category: ValCatGeometry,
				Path:     path,
				Field:    "count",
				Err:      ErrEmptyFinset,
			})
		}
	}

	for _, child := range b.children {
		errs = append(errs, validateTree(child, path)...)
	}
	return errs
}
