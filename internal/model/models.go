package model

import "time"

// All returns every persisted model, in migration order.
func All() []interface{} {
	return []interface{}{
		&AdminUser{},
		&SkillCategory{},
		&Skill{},
		&Certification{},
		&Education{},
		&Project{},
		&Message{},
	}
}

// ServerOwned is implemented by models whose identity and timestamps are assigned by
// the store. ResetServerFields clears them before a client payload is inserted.
type ServerOwned interface {
	ResetServerFields()
}

func (c *SkillCategory) ResetServerFields() {
	c.ID = 0
	c.Skills = nil
}

func (s *Skill) ResetServerFields() { s.ID = 0 }

func (c *Certification) ResetServerFields() { c.ID = 0 }

func (e *Education) ResetServerFields() {
	e.ID = 0
	e.CreatedAt = time.Time{}
}

func (p *Project) ResetServerFields() { p.ID = 0 }

func (m *Message) ResetServerFields() {
	m.ID = 0
	m.CreatedAt = time.Time{}
}
