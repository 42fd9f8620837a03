package parser

import "errors"

// walker visits every entity reachable from a document once. With follow
// set it resolves each reference and continues into the target, so entities
// of external documents are visited too.
type walker struct {
	follow bool
	seen   map[any]bool
	errs   []error

	refs    int
	schemas int
}

func newWalker(follow bool) *walker {
	return &walker{follow: follow, seen: make(map[any]bool)}
}

func (w *walker) enter(e any) bool {
	if w.seen[e] {
		return false
	}
	w.seen[e] = true
	return true
}

// descend returns the entity to descend into: e itself, or when e is a
// reference and the walker follows references, its resolved target.
func descend[T any](w *walker, e *T, k entityKind[T]) *T {
	if e == nil || !w.enter(e) {
		return nil
	}
	if k.ref(e) == nil {
		return e
	}
	w.refs++
	if !w.follow {
		return nil
	}
	t, err := resolve(e, k)
	if err != nil {
		w.errs = append(w.errs, err)
		return nil
	}
	if t == nil || !w.enter(t) {
		return nil
	}
	return t
}

func (w *walker) document(d *Document) {
	if d == nil {
		return
	}
	if d.Paths != nil {
		w.pathItems(d.Paths.Items)
	}
	w.pathItems(d.Webhooks)
	w.schemaMap(d.Definitions)
	for _, p := range d.Parameters.All() {
		w.parameter(p)
	}
	for _, r := range d.Responses.All() {
		w.response(r)
	}
	w.securitySchemes(d.SecurityDefinitions)
	w.components(d.Components)
}

func (w *walker) components(c *Components) {
	if c == nil {
		return
	}
	w.schemaMap(c.Schemas)
	for _, r := range c.Responses.All() {
		w.response(r)
	}
	for _, p := range c.Parameters.All() {
		w.parameter(p)
	}
	w.examples(c.Examples)
	for _, b := range c.RequestBodies.All() {
		w.requestBody(b)
	}
	w.headers(c.Headers)
	w.securitySchemes(c.SecuritySchemes)
	w.links(c.Links)
	for _, cb := range c.Callbacks.All() {
		w.callback(cb)
	}
	w.pathItems(c.PathItems)
	w.content(c.MediaTypes)
}

func (w *walker) pathItems(m *OrderedMap[*PathItem]) {
	for _, p := range m.All() {
		w.pathItem(p)
	}
}

func (w *walker) pathItem(p *PathItem) {
	p = descend(w, p, pathItemKind)
	if p == nil {
		return
	}
	for _, param := range p.Parameters {
		w.parameter(param)
	}
	for _, op := range p.Operations().All() {
		w.operation(op)
	}
}

func (w *walker) operation(op *Operation) {
	if op == nil {
		return
	}
	for _, p := range op.Parameters {
		w.parameter(p)
	}
	w.requestBody(op.RequestBody)
	if op.Responses != nil {
		w.response(op.Responses.Default)
		for _, r := range op.Responses.Codes.All() {
			w.response(r)
		}
	}
	for _, cb := range op.Callbacks.All() {
		w.callback(cb)
	}
}

func (w *walker) parameter(p *Parameter) {
	p = descend(w, p, parameterKind)
	if p == nil {
		return
	}
	w.schema(p.Schema)
	w.examples(p.Examples)
	w.content(p.Content)
}

func (w *walker) requestBody(b *RequestBody) {
	if b = descend(w, b, requestBodyKind); b != nil {
		w.content(b.Content)
	}
}

func (w *walker) content(m *OrderedMap[*MediaType]) {
	for _, mt := range m.All() {
		mt = descend(w, mt, mediaTypeKind)
		if mt == nil {
			continue
		}
		w.schema(mt.Schema)
		w.examples(mt.Examples)
		for _, enc := range mt.Encoding.All() {
			if enc != nil {
				w.headers(enc.Headers)
			}
		}
	}
}

func (w *walker) response(r *Response) {
	r = descend(w, r, responseKind)
	if r == nil {
		return
	}
	w.headers(r.Headers)
	w.content(r.Content)
	w.links(r.Links)
	w.schema(r.Schema)
}

func (w *walker) headers(m *OrderedMap[*Header]) {
	for _, h := range m.All() {
		h = descend(w, h, headerKind)
		if h == nil {
			continue
		}
		w.schema(h.Schema)
		w.examples(h.Examples)
		w.content(h.Content)
	}
}

func (w *walker) examples(m *OrderedMap[*Example]) {
	for _, e := range m.All() {
		descend(w, e, exampleKind)
	}
}

func (w *walker) links(m *OrderedMap[*Link]) {
	for _, l := range m.All() {
		descend(w, l, linkKind)
	}
}

func (w *walker) securitySchemes(m *OrderedMap[*SecurityScheme]) {
	for _, s := range m.All() {
		descend(w, s, securitySchemeKind)
	}
}

func (w *walker) callback(cb *Callback) {
	if cb = descend(w, cb, callbackKind); cb != nil {
		w.pathItems(cb.Expressions)
	}
}

func (w *walker) schemaMap(m *OrderedMap[*Schema]) {
	for _, s := range m.All() {
		w.schema(s)
	}
}

func (w *walker) schemaList(list []*Schema) {
	for _, s := range list {
		w.schema(s)
	}
}

func (w *walker) schema(s *Schema) {
	s = descend(w, s, schemaKind)
	if s == nil {
		return
	}
	w.schemas++
	w.schemaMap(s.Defs)
	w.schema(s.Items)
	w.schemaList(s.PrefixItems)
	w.schema(s.Contains)
	w.schemaMap(s.Properties)
	w.schemaMap(s.PatternProperties)
	w.schema(s.AdditionalProperties)
	w.schema(s.UnevaluatedProperties)
	w.schema(s.PropertyNames)
	w.schemaMap(s.DependentSchemas)
	w.schema(s.If)
	w.schema(s.Then)
	w.schema(s.Else)
	w.schemaList(s.AllOf)
	w.schemaList(s.AnyOf)
	w.schemaList(s.OneOf)
	w.schema(s.Not)
}

// ResolveAll resolves every reference reachable from the document,
// including references inside external documents, and returns all failures
// joined. Results stay cached on the references.
func (d *Document) ResolveAll() error {
	w := newWalker(true)
	w.document(d)
	return errors.Join(w.errs...)
}
