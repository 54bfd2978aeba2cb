package matterbridge

import "testing"

func TestIsTemperatureAttribute_TemperatureMeasurement(t *testing.T) {
	for _, cluster := range []string{"temperaturemeasurement", "TemperatureMeasurement", "TEMPERATUREMEASUREMENT"} {
		if !IsTemperatureAttribute(cluster, "measuredValue") {
			t.Errorf("expected %s/measuredValue to be a temperature", cluster)
		}
	}
	for _, attr := range []string{"MeasuredValue", "minMeasuredValue", "maxMeasuredValue", "tolerance", ""} {
		if IsTemperatureAttribute("temperaturemeasurement", attr) {
			t.Errorf("did not expect temperaturemeasurement/%s to be a temperature", attr)
		}
	}
}

func TestIsTemperatureAttribute_Thermostat(t *testing.T) {
	attrs := []string{
		"localTemperature",
		"outdoorTemperature",
		"occupiedCoolingSetpoint",
		"occupiedHeatingSetpoint",
		"unoccupiedCoolingSetpoint",
		"unoccupiedHeatingSetpoint",
		"absMinHeatSetpointLimit",
		"absMaxHeatSetpointLimit",
		"absMinCoolSetpointLimit",
		"absMaxCoolSetpointLimit",
		"minHeatSetpointLimit",
		"maxHeatSetpointLimit",
		"minCoolSetpointLimit",
		"maxCoolSetpointLimit",
	}
	for _, attr := range attrs {
		if !IsTemperatureAttribute("Thermostat", attr) {
			t.Errorf("expected Thermostat/%s to be a temperature", attr)
		}
	}
	for _, attr := range []string{"LocalTemperature", "systemMode", "occupancy", "piHeatingDemand", ""} {
		if IsTemperatureAttribute("thermostat", attr) {
			t.Errorf("did not expect thermostat/%s to be a temperature", attr)
		}
	}
}

func TestIsTemperatureAttribute_OtherClusters(t *testing.T) {
	cases := []struct {
		cluster, attr string
	}{
		{"relativeHumidityMeasurement", "measuredValue"},
		{"onOff", "onOff"},
		{"", "measuredValue"},
		{"thermostatUserInterfaceConfiguration", "localTemperature"},
	}
	for _, tc := range cases {
		if IsTemperatureAttribute(tc.cluster, tc.attr) {
			t.Errorf("did not expect %s/%s to be a temperature", tc.cluster, tc.attr)
		}
	}
}
