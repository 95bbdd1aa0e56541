package component

import "testing"

func TestComponentKinds(t *testing.T) {
	tests := []struct {
		name string
		kind Kind
		want string
	}{
		{"transform", TransformComponent.Kind(), "component.Transform"},
		{"health", HealthComponent.Kind(), "component.Health"},
		{"attack_timer", AttackTimerComponent.Kind(), "component.AttackTimer"},
	}

	seen := map[ComponentID]string{}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.kind.ID() == 0 {
				t.Fatalf("expected a non-zero id")
			}
			if other, dup := seen[tt.kind.ID()]; dup {
				t.Fatalf("id %d shared with %s", tt.kind.ID(), other)
			}
			seen[tt.kind.ID()] = tt.name
			if got := tt.kind.Name(); got != tt.want {
				t.Fatalf("expected name %q, got %q", tt.want, got)
			}
		})
	}

	if (ComponentKind[int]{}).Valid() {
		t.Fatalf("zero kind must be invalid")
	}
}
