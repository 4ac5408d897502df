package entities

// Repository is an artifact repository. The name is cosmetic, identity is the URL.
type Repository struct {
	name string
	url  string
}

func (r Repository) Name() string { return r.name }
func (r Repository) URL() string { return r.url }

func (r Repository) Equal(other Repository) bool { return r.url == other.url }

func (r Repository) String() string { return r.url }

// RepositoryBuilder is the mutable form of Repository.
type RepositoryBuilder struct {
	repo Repository
}

func NewRepositoryBuilder() *RepositoryBuilder { return &RepositoryBuilder{} }

func NewRepositoryBuilderFrom(repo Repository) *RepositoryBuilder {
	return &RepositoryBuilder{repo: repo}
}

func (b *RepositoryBuilder) WithName(name string) *RepositoryBuilder {
	b.repo.name = name
	return b
}

func (b *RepositoryBuilder) WithURL(url string) *RepositoryBuilder {
	b.repo.url = url
	return b
}

func (b *RepositoryBuilder) Build() Repository { return b.repo }
