package x

// Validater is an interface for anything that can be validated. It cannot
// be named Validator as that conflicts with the notion of a chain
// validator.
type Validater interface {
	Validate() error
}
