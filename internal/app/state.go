package app

import (
	"sync/atomic"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/clipview/internal/session"
	"github.com/philipparndt/clipview/pkg/watcher"
)

// CameraState holds all camera-related state
type CameraState struct {
	camera        rl.Camera3D
	distance      float32
	angleX        float32
	angleY        float32
	target        rl.Vector3 // Current camera target (can be panned)
	defaultDist   float32    // Default camera distance (for reset)
	defaultAngleX float32    // Default camera angle X (for reset)
	defaultAngleY float32    // Default camera angle Y (for reset)
}

// SceneData holds the viewer session and its framing
type SceneData struct {
	session *session.Session
	center  rl.Vector3 // Center of all spatial layers
	size    float32    // Largest extent of all spatial layers
}

// ViewSettings holds display settings
type ViewSettings struct {
	showPlanes bool // Draw enabled clipping planes as translucent quads
	showBounds bool // Draw the full world box of each layer
	showGrid   bool
	showHelp   bool
}

// InteractionState holds mouse state
type InteractionState struct {
	isPanning    bool
	isRotating   bool
	lastMousePos rl.Vector2
}

// FileWatchState holds file watching and reload state
type FileWatchState struct {
	fileWatcher *watcher.FileWatcher
	needsReload atomic.Bool // Set by the watcher goroutine, consumed by the frame loop
	lastError   error
	lastAdded   []string
	reloadedAt  time.Time
}

// PanelState holds the clipping slider panel
type PanelState struct {
	visible     bool
	collapsed   bool
	bounds      rl.Rectangle    // Bounds of the entire panel
	trackBounds [3]rl.Rectangle // Track of each axis row, in session.Order
	checkBounds [3]rl.Rectangle // Toggle box of each axis row
	dragRow     int             // -1=none, else the row being dragged
	dragHigh    bool            // Whether the high thumb is being dragged
	hoveredRow  int
}
