package component

// EnemyTag marks hostile actors that pursue the target.
type EnemyTag struct{}

var EnemyTagComponent = NewComponent[EnemyTag]()

// TargetTag marks the single controlled actor enemies chase and damage.
type TargetTag struct{}

var TargetTagComponent = NewComponent[TargetTag]()
