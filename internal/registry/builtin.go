package registry

func init() {
	Register(Variant{ID: "mini", Title: "Mini 3x3", Width: 3, Height: 3, Target: 256})
	Register(Variant{ID: DefaultID, Title: "Classic 4x4", Width: 4, Height: 4})
	Register(Variant{ID: "big", Title: "Big 5x5", Width: 5, Height: 5})
	Register(Variant{ID: "huge", Title: "Huge 6x6", Width: 6, Height: 6, Target: 8192})
}
