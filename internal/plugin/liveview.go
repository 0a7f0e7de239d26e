package plugin

// loadingVariant prefixes utilities with a LiveView loading-state class, so
// rules apply only while the class is present:
//
//	<div class="phx-click-loading:animate-ping">
//
// The variant matches the marker class on the element itself or on any
// ancestor.
type loadingVariant struct {
	name string
}

func loadingVariantFactory(name string) Factory {
	return func(Options) (Plugin, error) {
		return &loadingVariant{name: name}, nil
	}
}

func (p *loadingVariant) Name() string { return p.name }

func (p *loadingVariant) Register(api *API) error {
	marker := "." + p.name
	return api.AddVariant(p.name, marker+"&", marker+" &")
}
