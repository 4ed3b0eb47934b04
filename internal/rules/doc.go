// Package rules holds the D&D 5e formulas the sheet is built from: ability modifiers, proficiency,
// skill and save bonuses, armor class, encumbrance, currency and experience.
//
// Every function here is pure. Values outside the nominal ranges are clamped locally
// (ability scores cap at 20 on increase, hit point gains floor at 1) and never reported as errors.
package rules
