package models

// PersonType discriminates the three kinds of people a presence or
// vehicle record can belong to. Exactly one kind applies per record.
type PersonType string

const (
	PersonTypeWorker    PersonType = "worker"
	PersonTypeSupplier  PersonType = "supplier"
	PersonTypePersonnel PersonType = "leoni_personnel"
)

// Valid reports whether t is one of the known person kinds.
func (t PersonType) Valid() bool {
	switch t {
	case PersonTypeWorker, PersonTypeSupplier, PersonTypePersonnel:
		return true
	}
	return false
}
