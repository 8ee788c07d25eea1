package sensitive

// Cloner lets a record type provide its own deep copy. Processor requires it
// so Store and Send can transform a copy without touching the caller's value.
//
// Value types without pointers, slices or maps can return the receiver:
//
//	func (a BankAccount) Clone() BankAccount { return a }
//
// Types with reference fields must copy them:
//
//	func (a Application) Clone() Application {
//	    c := a
//	    if a.CoBorrower != nil {
//	        b := *a.CoBorrower
//	        c.CoBorrower = &b
//	    }
//	    return c
//	}
type Cloner[T any] interface {
	Clone() T
}
