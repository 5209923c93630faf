package registry

import "sync"

// Singleton holds the one Registry of a process. The application root owns
// a Singleton and passes the instance it returns to its collaborators.
type Singleton struct {
	once sync.Once
	inst *Registry
}

// Get returns the instance, constructing it with opts on the first call.
// Options passed to later calls are ignored.
func (s *Singleton) Get(opts ...Option) *Registry {
	s.once.Do(func() {
		s.inst = New(opts...)
	})
	return s.inst
}
