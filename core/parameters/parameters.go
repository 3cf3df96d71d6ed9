/*
Package parameters holds the typesetting registers consulted during math layout.

Registers follow TeX's grouping discipline: values pushed inside a group
are visible until the group ends, values pushed at group level 0 replace
the base value.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package parameters

import (
	"fmt"

	"github.com/npillmayer/tymath/core/dimen"
)

// TypesettingParameter is the key of a register.
type TypesettingParameter int

const (
	none TypesettingParameter = iota
	P_BASELINESKIP            // em fraction (float64), rows of arrays
	P_ARRAYSTRETCH            // factor (float64), \arraystretch
	P_ARRAYCOLSEP             // em fraction (float64), half of the gap between array columns
	P_SCRIPTSPACE             // dimension, space after a sub- or superscript
	P_NULLDELIMITERSPACE      // dimension, width of an empty delimiter
	P_DELIMITERFACTOR         // int, per mille of a formula a delimiter must cover
	P_DELIMITERSHORTFALL      // dimension, a delimiter may be this much shorter
	P_STOPPER
)

var parameterNames = [...]string{"none", "baselineskip", "arraystretch", "arraycolsep", "scriptspace",
	"nulldelimiterspace", "delimiterfactor", "delimitershortfall"}

func (p TypesettingParameter) String() string {
	if p < none || p >= P_STOPPER {
		return fmt.Sprintf("TypesettingParameter(%d)", int(p))
	}
	return parameterNames[p]
}

// ParameterGroup holds the registers set inside a group.
type ParameterGroup struct {
	params map[TypesettingParameter]interface{}
	level  int
	next   *ParameterGroup
}

// TypesettingRegisters is a set of registers. It is not safe for concurrent
// use.
type TypesettingRegisters struct {
	base       [P_STOPPER]interface{}
	groups     *ParameterGroup
	grouplevel int
}

// ----------------------------------------------------------------------

// NewTypesettingRegisters creates a set of registers holding default values.
func NewTypesettingRegisters() *TypesettingRegisters {
	regs := &TypesettingRegisters{}
	initParameters(&regs.base)
	return regs
}

func initParameters(p *[P_STOPPER]interface{}) {
	p[P_BASELINESKIP] = 1.2                       // 12pt at 10pt/em
	p[P_ARRAYSTRETCH] = 1.0                       //
	p[P_ARRAYCOLSEP] = 0.5                        // 5pt at 10pt/em
	p[P_SCRIPTSPACE] = dimen.PT.Scale(0.5)        // plain TeX \scriptspace
	p[P_NULLDELIMITERSPACE] = dimen.PT.Scale(1.2) // plain TeX \nulldelimiterspace
	p[P_DELIMITERFACTOR] = 1000                   // plain TeX uses 901
	p[P_DELIMITERSHORTFALL] = dimen.Dimen(0)      // plain TeX uses 5pt
}

// Begingroup opens a group of register settings.
func (regs *TypesettingRegisters) Begingroup() {
	regs.grouplevel++
}

// Endgroup closes the innermost group, restoring the values in effect
// when it was opened. Unbalanced calls are ignored.
func (regs *TypesettingRegisters) Endgroup() {
	if regs.grouplevel > 0 {
		if regs.groups != nil && regs.groups.level == regs.grouplevel {
			regs.groups = regs.groups.next
		}
		regs.grouplevel--
	}
}

// Push sets a register. Inside a group the value is visible until the
// group ends; outside any group it replaces the base value.
func (regs *TypesettingRegisters) Push(key TypesettingParameter, value interface{}) {
	if regs.grouplevel == 0 {
		regs.base[key] = value
		return
	}
	if regs.groups == nil || regs.groups.level < regs.grouplevel {
		regs.groups = &ParameterGroup{
			params: make(map[TypesettingParameter]interface{}),
			level:  regs.grouplevel,
			next:   regs.groups,
		}
	}
	regs.groups.params[key] = value
}

// Get returns the value of a register, searching from the innermost group
// outwards.
func (regs *TypesettingRegisters) Get(key TypesettingParameter) interface{} {
	if key <= none || key >= P_STOPPER {
		panic(fmt.Sprintf("parameter key %d outside range of typesetting parameters", key))
	}
	for g := regs.groups; g != nil; g = g.next {
		if value, ok := g.params[key]; ok {
			return value
		}
	}
	return regs.base[key]
}

// N returns an integer register.
func (regs *TypesettingRegisters) N(key TypesettingParameter) int {
	return regs.Get(key).(int)
}

// F returns a register holding a factor or a length in em.
func (regs *TypesettingRegisters) F(key TypesettingParameter) float64 {
	return regs.Get(key).(float64)
}

// D returns a dimension register.
func (regs *TypesettingRegisters) D(key TypesettingParameter) dimen.Dimen {
	return regs.Get(key).(dimen.Dimen)
}
