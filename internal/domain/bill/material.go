package bill

// Material is the closed set of purchase categories a bill can carry.
type Material string

const (
	MaterialPipes      Material = "pipes"
	MaterialCement     Material = "cement"
	MaterialSteel      Material = "steel"
	MaterialElectrical Material = "electrical"
	MaterialTools      Material = "tools"
	MaterialHardware   Material = "hardware"
	MaterialPaint      Material = "paint"
	MaterialWood       Material = "wood"
	MaterialTransport  Material = "transport"
	MaterialMisc       Material = "misc"
)

// MaterialInfo is the display metadata of a material.
type MaterialInfo struct {
	ID   Material `json:"id"`
	Name string   `json:"name"`
	Icon string   `json:"icon"`
}

var materials = []MaterialInfo{
	{ID: MaterialPipes, Name: "Water Pipes", Icon: "droplets"},
	{ID: MaterialCement, Name: "Cement", Icon: "building"},
	{ID: MaterialSteel, Name: "Steel/Rebar", Icon: "shield"},
	{ID: MaterialElectrical, Name: "Electrical", Icon: "zap"},
	{ID: MaterialTools, Name: "Tools", Icon: "hammer"},
	{ID: MaterialHardware, Name: "Hardware", Icon: "wrench"},
	{ID: MaterialPaint, Name: "Paint", Icon: "paintbrush"},
	{ID: MaterialWood, Name: "Wood", Icon: "tree-pine"},
	{ID: MaterialTransport, Name: "Transport", Icon: "truck"},
	{ID: MaterialMisc, Name: "Miscellaneous", Icon: "layers"},
}

// Materials returns the catalogue in display order.
func Materials() []MaterialInfo {
	out := make([]MaterialInfo, len(materials))
	copy(out, materials)
	return out
}

// Info returns the metadata of m. Unknown values fall back to Miscellaneous.
func (m Material) Info() MaterialInfo {
	for _, info := range materials {
		if info.ID == m {
			return info
		}
	}
	return materials[len(materials)-1]
}

func ParseMaterial(s string) (Material, bool) {
	for _, info := range materials {
		if string(info.ID) == s {
			return info.ID, true
		}
	}
	return "", false
}
