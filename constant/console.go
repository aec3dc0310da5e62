package constant

// Console model identifiers accepted by the console.model config key.
const (
	ModelDS  = "ds"
	ModelDSi = "dsi"
	Model3DS = "3ds"
)
