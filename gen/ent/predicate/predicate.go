// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Answer is the predicate function for answer builders.
type Answer func(*sql.Selector)

// AnswerScript is the predicate function for answerscript builders.
type AnswerScript func(*sql.Selector)

// Examination is the predicate function for examination builders.
type Examination func(*sql.Selector)

// Question is the predicate function for question builders.
type Question func(*sql.Selector)

// Student is the predicate function for student builders.
type Student func(*sql.Selector)
