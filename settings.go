package matterbridge

// SystemConversionTarget is the bridge-wide temperature output unit.
type SystemConversionTarget string

// DeviceConversionMode is a per-device override of the system target.
type DeviceConversionMode string

const (
	SystemConversionNone       SystemConversionTarget = "none"
	SystemConversionCelsius    SystemConversionTarget = "celsius"
	SystemConversionFahrenheit SystemConversionTarget = "fahrenheit"
)

const (
	DeviceConversionFollowSystem    DeviceConversionMode = "follow_system"
	DeviceConversionNone            DeviceConversionMode = "none"
	DeviceConversionForceCelsius    DeviceConversionMode = "force_celsius"
	DeviceConversionForceFahrenheit DeviceConversionMode = "force_fahrenheit"
)

// Defaults applied when a setting was never persisted.
const (
	DefaultSystemConversionTarget = SystemConversionNone
	DefaultDeviceConversionMode   = DeviceConversionFollowSystem
)

// SettingOption is one selectable entry of a settings dropdown.
type SettingOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// SystemConversionTargetOptions lists the system-wide conversion
// choices for the settings UI.
var SystemConversionTargetOptions = []SettingOption{
	{Value: string(SystemConversionNone), Label: "No conversion"},
	{Value: string(SystemConversionCelsius), Label: "Celsius (°C)"},
	{Value: string(SystemConversionFahrenheit), Label: "Fahrenheit (°F)"},
}

// DeviceConversionModeOptions lists the per-device conversion choices.
var DeviceConversionModeOptions = []SettingOption{
	{Value: string(DeviceConversionFollowSystem), Label: "Follow system setting"},
	{Value: string(DeviceConversionNone), Label: "No conversion"},
	{Value: string(DeviceConversionForceCelsius), Label: "Always Celsius (°C)"},
	{Value: string(DeviceConversionForceFahrenheit), Label: "Always Fahrenheit (°F)"},
}
