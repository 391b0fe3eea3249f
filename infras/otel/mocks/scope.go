package mocks

type Scope struct {
	owner *Otel
	Name  string

	ended      bool
	errors     []error
	events     []string
	attributes map[string]any
}

func (s *Scope) End() {
	s.owner.mu.Lock()
	defer s.owner.mu.Unlock()

	s.ended = true
}

func (s *Scope) TraceError(err error) {
	s.owner.mu.Lock()
	defer s.owner.mu.Unlock()

	s.errors = append(s.errors, err)
}

func (s *Scope) TraceIfError(err *error) {
	if err != nil && *err != nil {
		s.TraceError(*err)
	}
}

func (s *Scope) AddEvent(name string) {
	s.owner.mu.Lock()
	defer s.owner.mu.Unlock()

	s.events = append(s.events, name)
}

func (s *Scope) SetAttribute(key string, value any) {
	s.owner.mu.Lock()
	defer s.owner.mu.Unlock()

	s.attributes[key] = value
}

func (s *Scope) SetAttributes(attributes map[string]any) {
	for k, v := range attributes {
		s.SetAttribute(k, v)
	}
}

func (s *Scope) Ended() bool {
	s.owner.mu.Lock()
	defer s.owner.mu.Unlock()

	return s.ended
}

func (s *Scope) Errors() []error {
	s.owner.mu.Lock()
	defer s.owner.mu.Unlock()

	return append([]error(nil), s.errors...)
}

func (s *Scope) Attribute(key string) any {
	s.owner.mu.Lock()
	defer s.owner.mu.Unlock()

	return s.attributes[key]
}
