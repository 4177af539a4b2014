package pricing

import "adspend/internal/core/domain"

// Registry resolves platform names to their calculators. The set of
// platforms is fixed at construction; every calculator shares one rate card.
type Registry struct {
	order       []domain.Platform
	calculators map[domain.Platform]Calculator
}

// NewRegistry builds the registry for Instagram, Facebook and LinkedIn.
func NewRegistry(card *RateCard) *Registry {
	calcs := []Calculator{
		NewInstagram(card),
		NewFacebook(card),
		NewLinkedIn(card),
	}
	r := &Registry{calculators: make(map[domain.Platform]Calculator, len(calcs))}
	for _, c := range calcs {
		r.order = append(r.order, c.Platform())
		r.calculators[c.Platform()] = c
	}
	return r
}

// Resolve returns the calculator registered for name or an
// UnsupportedPlatformError.
func (r *Registry) Resolve(name string) (Calculator, error) {
	c, ok := r.calculators[domain.Platform(name)]
	if !ok {
		return nil, &domain.UnsupportedPlatformError{Name: name}
	}
	return c, nil
}

// Platforms lists the registered platforms in registration order.
func (r *Registry) Platforms() []domain.Platform {
	out := make([]domain.Platform, len(r.order))
	copy(out, r.order)
	return out
}
