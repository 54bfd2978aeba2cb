package matterbridge

import "strings"

// Thermostat attributes that carry a temperature. Attribute names use
// exact Matter casing.
var thermostatTemperatureAttributes = map[string]struct{}{
	"localTemperature":          {},
	"outdoorTemperature":        {},
	"occupiedCoolingSetpoint":   {},
	"occupiedHeatingSetpoint":   {},
	"unoccupiedCoolingSetpoint": {},
	"unoccupiedHeatingSetpoint": {},
	"absMinHeatSetpointLimit":   {},
	"absMaxHeatSetpointLimit":   {},
	"absMinCoolSetpointLimit":   {},
	"absMaxCoolSetpointLimit":   {},
	"minHeatSetpointLimit":      {},
	"maxHeatSetpointLimit":      {},
	"minCoolSetpointLimit":      {},
	"maxCoolSetpointLimit":      {},
}

// IsTemperatureAttribute reports whether a cluster attribute holds a
// temperature the conversion pipeline should touch. The cluster name
// check is case-insensitive, the attribute name check is exact.
func IsTemperatureAttribute(clusterName, attributeName string) bool {
	switch strings.ToLower(clusterName) {
	case "temperaturemeasurement":
		return attributeName == "measuredValue"
	case "thermostat":
		_, ok := thermostatTemperatureAttributes[attributeName]
		return ok
	}
	return false
}
