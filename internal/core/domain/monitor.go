package domain

// Monitor is one output reported by the window manager's monitors query.
type Monitor struct {
	ID              int       `json:"id"`
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	Make            string    `json:"make"`
	Model           string    `json:"model"`
	Width           int       `json:"width"`
	Height          int       `json:"height"`
	RefreshRate     float64   `json:"refreshRate"`
	X               int       `json:"x"`
	Y               int       `json:"y"`
	Scale           float64   `json:"scale"`
	Transform       int       `json:"transform"`
	Focused         bool      `json:"focused"`
	DPMSStatus      bool      `json:"dpmsStatus"`
	ActiveWorkspace Workspace `json:"activeWorkspace"`
}

// Workspace identifies a window manager workspace.
type Workspace struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

var transformLabels = map[int]string{
	0: "none",
	1: "90°",
	2: "180°",
	3: "270°",
	4: "flipped",
	5: "flipped 90°",
	6: "flipped 180°",
	7: "flipped 270°",
}

// TransformLabel describes a wl_output transform value.
func TransformLabel(transform int) string {
	if l, ok := transformLabels[transform]; ok {
		return l
	}
	return "unknown"
}

// IsRotated reports whether the transform turns the output by 90 or 270 degrees.
func IsRotated(transform int) bool {
	switch transform {
	case 1, 3, 5, 7:
		return true
	default:
		return false
	}
}

// LogicalSize returns the width and height as laid out, swapped for rotated outputs.
func (m Monitor) LogicalSize() (width, height int) {
	if IsRotated(m.Transform) {
		return m.Height, m.Width
	}
	return m.Width, m.Height
}
