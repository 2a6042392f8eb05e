package generator

// Entity is a named thing whose attributes drive destination patterns.
type Entity interface {
	Name() string
	ModuleNames() []string
}

// ContextKind tells how a Context was built.
type ContextKind int

const (
	ContextNone ContextKind = iota
	ContextData
	ContextEntity
)

// Context is the render input handed to Generate. The zero value carries no
// context, which forces a literal copy of the source.
type Context struct {
	kind   ContextKind
	data   any
	entity Entity
}

// NoContext returns the empty context.
func NoContext() Context {
	return Context{}
}

// WithData renders templates with data. A nil data value is the same as
// NoContext.
func WithData(data any) Context {
	if data == nil {
		return Context{}
	}
	return Context{kind: ContextData, data: data}
}

// WithEntity renders templates with e and expands destination patterns from
// its name and module names. A nil entity is the same as NoContext.
func WithEntity(e Entity) Context {
	if e == nil {
		return Context{}
	}
	return Context{kind: ContextEntity, data: e, entity: e}
}

func (c Context) Kind() ContextKind {
	return c.kind
}

// Present reports whether the context carries any render data.
func (c Context) Present() bool {
	return c.kind != ContextNone
}

// Data returns the value handed to templates.
func (c Context) Data() any {
	return c.data
}

// Entity returns the entity of an entity context.
func (c Context) Entity() (Entity, bool) {
	return c.entity, c.kind == ContextEntity
}

// GenerateOptions configures a single Generate call.
type GenerateOptions struct {
	Context Context

	// SkipExisting declines to produce an artifact when the destination
	// already exists. The default overwrites.
	SkipExisting bool
}
