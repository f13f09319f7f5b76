package container

import "errors"

// Catalog collects descriptors during registration and freezes them into a
// CandidateSet. It is meant for single-goroutine bootstrap code.
type Catalog struct {
	descs []Descriptor
	errs  []error
}

// NewCatalog returns an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{}
}

// Add appends descriptors and returns the catalog for chaining.
func (c *Catalog) Add(descs ...Descriptor) *Catalog {
	c.descs = append(c.descs, descs...)
	return c
}

// Include takes the result of Describe directly; a registration error is
// kept and reported by Freeze.
//
//	cat.Include(container.Describe[*Mailer](container.Inject(NewMailer)))
func (c *Catalog) Include(d Descriptor, err error) *Catalog {
	if err != nil {
		c.errs = append(c.errs, err)
		return c
	}
	return c.Add(d)
}

// Len returns the number of collected descriptors.
func (c *Catalog) Len() int { return len(c.descs) }

// Freeze validates the collected descriptors and returns the immutable set.
func (c *Catalog) Freeze() (*CandidateSet, error) {
	if len(c.errs) > 0 {
		return nil, errors.Join(c.errs...)
	}
	return NewCandidateSet(c.descs...)
}
