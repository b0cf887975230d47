package typed

import (
	stderrors "errors"

	"github.com/kbukum/creational/abstractfactory"
)

// Run creates both products of family V, lets B work with A and releases them.
// No policy is needed: a mismatched pairing cannot be expressed.
func Run[V Variant](f Factory[V]) (abstractfactory.Result, error) {
	ha, err := f.CreateProductA()
	if err != nil {
		return abstractfactory.Result{}, err
	}
	hb, err := f.CreateProductB()
	if err != nil {
		return abstractfactory.Result{}, stderrors.Join(err, ha.Release())
	}

	a, errA := ha.Value()
	b, errB := hb.Value()
	var res abstractfactory.Result
	if errA == nil && errB == nil {
		res = abstractfactory.Result{Operation: b.Operation(), Collaboration: b.CollaborateWith(a)}
	}
	if err := stderrors.Join(errA, errB, hb.Release(), ha.Release()); err != nil {
		return abstractfactory.Result{}, err
	}
	return res, nil
}
