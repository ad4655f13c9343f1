package feature

import (
	"fmt"
)

/*
Sample is an interface for something that can satisfy a Criterion.

Its ValueFor method returns the value corresponding to the feature
with the name passed as parameter, or an error if the sample knows
nothing about such a feature.
*/
type Sample interface {
	ValueFor(name string) (Value, error)
}

/*
Criterion represents a constraint on a feature

Its SatisfiedBy method takes a sample and returns a boolean indicating if
the given value satisfies the feature criterion.

Its Feature method returns the feature on which the criterion is applied.
*/
type Criterion interface {
	Feature() Feature
	SatisfiedBy(sample Sample) (bool, error)
}

/*
DiscreteCriterion represents a constraint on a feature to take a
specific value.

Its Value method returns the value to which the feature is constrained.
*/
type DiscreteCriterion interface {
	Criterion
	Value() Value
}

type discreteCriterion struct {
	feature Feature
	value   Value
}

/*
NewDiscreteCriterion takes a feature and a value and returns a
DiscreteCriterion satisfied by samples whose value for the feature
equals the given one.
*/
func NewDiscreteCriterion(f Feature, v Value) DiscreteCriterion {
	return &discreteCriterion{f, v}
}

func (dc *discreteCriterion) Feature() Feature {
	return dc.feature
}

/*
SatisfiedBy receives a sample as parameter and returns a boolean indicating if the
sample satisfies the criterion, that is, if its value for the feature is equal
(same kind, same payload) to the value on the criterion. An error is returned if
the value cannot be obtained from the sample.
*/
func (dc *discreteCriterion) SatisfiedBy(sample Sample) (bool, error) {
	v, err := sample.ValueFor(dc.feature.Name())
	if err != nil {
		return false, err
	}
	return v == dc.value, nil
}

func (dc *discreteCriterion) Value() Value {
	return dc.value
}

func (dc *discreteCriterion) String() string {
	return fmt.Sprintf("%s is %v", dc.feature.Name(), dc.value)
}
