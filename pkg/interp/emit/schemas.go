package emit

import (
	"strings"

	"github.com/LuisCarlosOrobio/InterpreCAD/pkg/interp/value"
)

// catalog returns the static schema table for the drawing command set. Each
// entry is data: the parameter list with defaults and a short template
// closure. Template functions may assert resolved values to the declared
// kind's variant; Render guarantees the kinds match.
func catalog() []*Schema {
	return []*Schema{
		// ----- geometry -----
		{
			Type: "POINT",
			Params: []ParamSpec{
				{"position", value.KindPoint, value.Point{}},
			},
			Render: func(p Resolved, f *Formatter) string {
				return "Rhino.AddPoint " + f.Arr(p["position"])
			},
		},
		{
			Type: "LINE",
			Params: []ParamSpec{
				{"start", value.KindPoint, value.Point{}},
				{"end", value.KindPoint, value.Point{X: 1}},
			},
			Render: func(p Resolved, f *Formatter) string {
				return "Rhino.AddLine " + f.Arr(p["start"]) + ", " + f.Arr(p["end"])
			},
		},
		{
			Type: "POLYLINE",
			Params: []ParamSpec{
				{"p1", value.KindPoint, value.Point{}},
				{"p2", value.KindPoint, value.Point{X: 1}},
				{"p3", value.KindPoint, value.Point{X: 1, Y: 1}},
			},
			Render: func(p Resolved, f *Formatter) string {
				return "Rhino.AddPolyline Array(" + f.Arr(p["p1"]) + ", " + f.Arr(p["p2"]) + ", " + f.Arr(p["p3"]) + ")"
			},
		},
		{
			Type: "CIRCLE",
			Params: []ParamSpec{
				{"center", value.KindPoint, value.Point{}},
				{"radius", value.KindNumber, value.Number(1)},
			},
			Render: func(p Resolved, f *Formatter) string {
				return "Rhino.AddCircle " + f.Arr(p["center"]) + ", " + f.Num(p["radius"])
			},
		},
		{
			Type: "ARC",
			Params: []ParamSpec{
				{"center", value.KindPoint, value.Point{}},
				{"radius", value.KindNumber, value.Number(1)},
				{"angle", value.KindNumber, value.Number(90)},
			},
			Render: func(p Resolved, f *Formatter) string {
				return "Rhino.AddArc Rhino.MovePlane(Rhino.WorldXYPlane(), " + f.Arr(p["center"]) + "), " +
					f.Num(p["radius"]) + ", " + f.Num(p["angle"])
			},
		},
		{
			Type: "ELLIPSE",
			Params: []ParamSpec{
				{"center", value.KindPoint, value.Point{}},
				{"xradius", value.KindNumber, value.Number(2)},
				{"yradius", value.KindNumber, value.Number(1)},
			},
			Render: func(p Resolved, f *Formatter) string {
				return "Rhino.AddEllipse Rhino.MovePlane(Rhino.WorldXYPlane(), " + f.Arr(p["center"]) + "), " +
					f.Num(p["xradius"]) + ", " + f.Num(p["yradius"])
			},
		},
		{
			Type: "RECTANGLE",
			Params: []ParamSpec{
				{"corner", value.KindPoint, value.Point{}},
				{"width", value.KindNumber, value.Number(1)},
				{"height", value.KindNumber, value.Number(1)},
			},
			Render: func(p Resolved, f *Formatter) string {
				return "Rhino.AddRectangle Rhino.MovePlane(Rhino.WorldXYPlane(), " + f.Arr(p["corner"]) + "), " +
					f.Num(p["width"]) + ", " + f.Num(p["height"])
			},
		},
		{
			Type: "BOX",
			Params: []ParamSpec{
				{"corner", value.KindPoint, value.Point{}},
				{"width", value.KindNumber, value.Number(1)},
				{"depth", value.KindNumber, value.Number(1)},
				{"height", value.KindNumber, value.Number(1)},
			},
			Render: func(p Resolved, f *Formatter) string {
				c := p["corner"].(value.Point)
				w := float64(p["width"].(value.Number))
				d := float64(p["depth"].(value.Number))
				h := float64(p["height"].(value.Number))
				corners := []value.Point{
					{X: c.X, Y: c.Y, Z: c.Z},
					{X: c.X + w, Y: c.Y, Z: c.Z},
					{X: c.X + w, Y: c.Y + d, Z: c.Z},
					{X: c.X, Y: c.Y + d, Z: c.Z},
					{X: c.X, Y: c.Y, Z: c.Z + h},
					{X: c.X + w, Y: c.Y, Z: c.Z + h},
					{X: c.X + w, Y: c.Y + d, Z: c.Z + h},
					{X: c.X, Y: c.Y + d, Z: c.Z + h},
				}
				parts := make([]string, len(corners))
				for i, pt := range corners {
					parts[i] = f.Arr(pt)
				}
				return "Rhino.AddBox Array(" + strings.Join(parts, ", ") + ")"
			},
		},
		{
			Type: "SPHERE",
			Params: []ParamSpec{
				{"center", value.KindPoint, value.Point{}},
				{"radius", value.KindNumber, value.Number(1)},
			},
			Render: func(p Resolved, f *Formatter) string {
				return "Rhino.AddSphere " + f.Arr(p["center"]) + ", " + f.Num(p["radius"])
			},
		},
		{
			Type: "CYLINDER",
			Params: []ParamSpec{
				{"base", value.KindPoint, value.Point{}},
				{"radius", value.KindNumber, value.Number(1)},
				{"height", value.KindNumber, value.Number(1)},
			},
			Render: func(p Resolved, f *Formatter) string {
				b := p["base"].(value.Point)
				h := float64(p["height"].(value.Number))
				top := value.Point{X: b.X, Y: b.Y, Z: b.Z + h}
				return "Rhino.AddCylinder " + f.Arr(b) + ", " + f.Arr(top) + ", " + f.Num(p["radius"])
			},
		},
		{
			Type: "CONE",
			Params: []ParamSpec{
				{"base", value.KindPoint, value.Point{}},
				{"radius", value.KindNumber, value.Number(1)},
				{"height", value.KindNumber, value.Number(1)},
			},
			Render: func(p Resolved, f *Formatter) string {
				b := p["base"].(value.Point)
				h := float64(p["height"].(value.Number))
				tip := value.Point{X: b.X, Y: b.Y, Z: b.Z + h}
				return "Rhino.AddCone " + f.Arr(tip) + ", " + f.Arr(b) + ", " + f.Num(p["radius"])
			},
		},
		{
			Type: "TORUS",
			Params: []ParamSpec{
				{"center", value.KindPoint, value.Point{}},
				{"major", value.KindNumber, value.Number(2)},
				{"minor", value.KindNumber, value.Number(0.5)},
			},
			Render: func(p Resolved, f *Formatter) string {
				return "Rhino.AddTorus " + f.Arr(p["center"]) + ", " + f.Num(p["major"]) + ", " + f.Num(p["minor"])
			},
		},
		{
			Type: "PLANESURFACE",
			Params: []ParamSpec{
				{"origin", value.KindPoint, value.Point{}},
				{"width", value.KindNumber, value.Number(1)},
				{"height", value.KindNumber, value.Number(1)},
			},
			Render: func(p Resolved, f *Formatter) string {
				return "Rhino.AddPlaneSurface Rhino.MovePlane(Rhino.WorldXYPlane(), " + f.Arr(p["origin"]) + "), " +
					f.Num(p["width"]) + ", " + f.Num(p["height"])
			},
		},
		{
			Type: "TEXT",
			Params: []ParamSpec{
				{"text", value.KindText, value.Text("")},
				{"position", value.KindPoint, value.Point{}},
				{"height", value.KindNumber, value.Number(1)},
			},
			Render: func(p Resolved, f *Formatter) string {
				return "Rhino.AddText " + f.Str(p["text"]) + ", " + f.Arr(p["position"]) + ", " + f.Num(p["height"])
			},
		},
		{
			Type: "TEXTDOT",
			Params: []ParamSpec{
				{"text", value.KindText, value.Text("")},
				{"position", value.KindPoint, value.Point{}},
			},
			Render: func(p Resolved, f *Formatter) string {
				return "Rhino.AddTextDot " + f.Str(p["text"]) + ", " + f.Arr(p["position"])
			},
		},

		// ----- transforms, applied to the current selection -----
		{
			Type: "MOVE",
			Params: []ParamSpec{
				{"translation", value.KindVector, value.Vector{}},
			},
			Render: func(p Resolved, f *Formatter) string {
				return "Rhino.MoveObjects Rhino.SelectedObjects(), " + f.Arr(p["translation"])
			},
		},
		{
			Type: "COPY",
			Params: []ParamSpec{
				{"translation", value.KindVector, value.Vector{}},
			},
			Render: func(p Resolved, f *Formatter) string {
				return "Rhino.CopyObjects Rhino.SelectedObjects(), " + f.Arr(p["translation"])
			},
		},
		{
			Type: "ROTATE",
			Params: []ParamSpec{
				{"center", value.KindPoint, value.Point{}},
				{"angle", value.KindNumber, value.Number(90)},
				{"axis", value.KindVector, value.Vector{Z: 1}},
			},
			Render: func(p Resolved, f *Formatter) string {
				return "Rhino.RotateObjects Rhino.SelectedObjects(), " + f.Arr(p["center"]) + ", " +
					f.Num(p["angle"]) + ", " + f.Arr(p["axis"])
			},
		},
		{
			Type: "SCALE",
			Params: []ParamSpec{
				{"origin", value.KindPoint, value.Point{}},
				{"factor", value.KindNumber, value.Number(1)},
			},
			Render: func(p Resolved, f *Formatter) string {
				s := f.Num(p["factor"])
				return "Rhino.ScaleObjects Rhino.SelectedObjects(), " + f.Arr(p["origin"]) + ", " +
					"Array(" + s + ", " + s + ", " + s + ")"
			},
		},
		{
			Type: "MIRROR",
			Params: []ParamSpec{
				{"start", value.KindPoint, value.Point{}},
				{"end", value.KindPoint, value.Point{X: 1}},
			},
			Render: func(p Resolved, f *Formatter) string {
				return "Rhino.MirrorObjects Rhino.SelectedObjects(), " + f.Arr(p["start"]) + ", " + f.Arr(p["end"])
			},
		},
		{
			Type: "EXTRUDE",
			Params: []ParamSpec{
				{"direction", value.KindVector, value.Vector{Z: 1}},
			},
			Render: func(p Resolved, f *Formatter) string {
				return "Rhino.ExtrudeCurveStraight Rhino.SelectedObjects()(0), Array(0, 0, 0), " + f.Arr(p["direction"])
			},
		},
		{
			Type:   "LOFT",
			Params: nil,
			Render: func(p Resolved, f *Formatter) string {
				return "Rhino.AddLoftSrf Rhino.SelectedObjects()"
			},
		},
		{
			Type:   "DELETE",
			Params: nil,
			Render: func(p Resolved, f *Formatter) string {
				return "Rhino.DeleteObjects Rhino.SelectedObjects()"
			},
		},

		// ----- selection and appearance -----
		{
			Type:   "SELECTALL",
			Params: nil,
			Render: func(p Resolved, f *Formatter) string {
				return "Rhino.SelectObjects Rhino.AllObjects()"
			},
		},
		{
			Type:   "UNSELECT",
			Params: nil,
			Render: func(p Resolved, f *Formatter) string {
				return "Rhino.UnselectAllObjects"
			},
		},
		{
			Type: "COLOR",
			Params: []ParamSpec{
				{"color", value.KindColor, value.Color{}},
			},
			Render: func(p Resolved, f *Formatter) string {
				return "Rhino.ObjectColor Rhino.SelectedObjects(), " + f.RGB(p["color"])
			},
		},
		{
			Type: "LAYER",
			Params: []ParamSpec{
				{"name", value.KindText, value.Text("Default")},
			},
			Render: func(p Resolved, f *Formatter) string {
				n := f.Str(p["name"])
				return "Rhino.AddLayer " + n + "\nRhino.CurrentLayer " + n
			},
		},
		{
			Type: "GROUP",
			Params: []ParamSpec{
				{"name", value.KindText, value.Text("")},
			},
			Render: func(p Resolved, f *Formatter) string {
				return "Rhino.AddObjectsToGroup Rhino.SelectedObjects(), Rhino.AddGroup(" + f.Str(p["name"]) + ")"
			},
		},

		// ----- view and session -----
		{
			Type: "VIEW",
			Params: []ParamSpec{
				{"name", value.KindText, value.Text("Perspective")},
			},
			Render: func(p Resolved, f *Formatter) string {
				return "Rhino.CurrentView " + f.Str(p["name"])
			},
		},
		{
			Type:   "ZOOM",
			Params: nil,
			Render: func(p Resolved, f *Formatter) string {
				return "Rhino.ZoomExtents"
			},
		},
		{
			Type:   "UNDO",
			Params: nil,
			Render: func(p Resolved, f *Formatter) string {
				return "Rhino.Command \"_Undo\""
			},
		},
		{
			Type:   "REDO",
			Params: nil,
			Render: func(p Resolved, f *Formatter) string {
				return "Rhino.Command \"_Redo\""
			},
		},
		{
			Type: "SAVE",
			Params: []ParamSpec{
				{"filename", value.KindText, value.Text("output.3dm")},
			},
			Render: func(p Resolved, f *Formatter) string {
				return "Rhino.Command \"_-SaveAs \" & " + f.Str(p["filename"])
			},
		},
	}
}
