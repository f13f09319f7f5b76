package greeting

import "github.com/km-arc/go-beans/framework/container"

// Provider registers the greeting components.
type Provider struct {
	container.BaseProvider
}

func (p *Provider) Register(cat *container.Catalog) {
	cat.Add(container.Interface[Repository]())
	cat.Include(container.Describe[*MemoryRepository](
		container.Default(NewMemoryRepository),
		container.As[Repository](),
	))
	cat.Include(container.Describe[*Service](container.Inject(NewService)))
	cat.Include(container.Describe[*Controller](
		container.Inject(NewController),
		container.Marked(container.MarkerController),
	))
}
