package component

// Health is an integer pool. Current is allowed to drop below zero; systems
// that care about death check Current <= 0.
type Health struct {
	Current int
	Max     int
}

func (h Health) Depleted() bool {
	return h.Current <= 0
}

var HealthComponent = NewComponent[Health]()
