package api

import (
	"context"
	"net/http"

	"github.com/ItsNotGoodName/x-cwm/internal/build"
	"github.com/ItsNotGoodName/x-cwm/internal/wm"
	"github.com/ItsNotGoodName/x-cwm/pkg/chiext"
	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

type Workspaces struct {
	Current    int         `json:"current" doc:"Index of the shown workspace"`
	Total      int         `json:"total" doc:"Number of workspaces"`
	Capacity   int         `json:"capacity" doc:"Windows per workspace"`
	Workspaces []Workspace `json:"workspaces"`
}

type Workspace struct {
	Index   int      `json:"index"`
	Windows []Window `json:"windows"`
}

type Window struct {
	ID        uint32 `json:"id" doc:"X window id"`
	X         int16  `json:"x"`
	Y         int16  `json:"y"`
	W         uint16 `json:"w"`
	H         uint16 `json:"h"`
	Maximized bool   `json:"maximized"`
	Hidden    bool   `json:"hidden"`
}

func NewWorkspaces(s wm.Snapshot) Workspaces {
	workspaces := make([]Workspace, len(s.Workspaces))
	for i, ws := range s.Workspaces {
		windows := make([]Window, len(ws.Windows))
		for j, win := range ws.Windows {
			windows[j] = Window{
				ID:        uint32(win.ID),
				X:         win.Geometry.X,
				Y:         win.Geometry.Y,
				W:         win.Geometry.W,
				H:         win.Geometry.H,
				Maximized: win.Maximized,
				Hidden:    win.Hidden,
			}
		}
		workspaces[i] = Workspace{
			Index:   ws.Index,
			Windows: windows,
		}
	}

	return Workspaces{
		Current:    s.Current,
		Total:      s.Total,
		Capacity:   s.Capacity,
		Workspaces: workspaces,
	}
}

type WorkspacesOutput struct {
	Body Workspaces
}

type BuildOutput struct {
	Body build.Build
}

// NewRouter returns the HTTP handler of the read-only status API.
func NewRouter(store *Store) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(chiext.Logger())
	r.Use(middleware.Recoverer)

	api := humachi.New(r, huma.DefaultConfig("x-cwm", build.Current.Version))

	huma.Register(api, huma.Operation{
		OperationID: "list-workspaces",
		Method:      http.MethodGet,
		Path:        "/api/workspaces",
		Summary:     "List workspaces",
		Description: "Workspaces and their windows as of the last handled event.",
	}, func(ctx context.Context, input *struct{}) (*WorkspacesOutput, error) {
		snapshot, ok := store.Snapshot()
		if !ok {
			return nil, huma.Error503ServiceUnavailable("window manager has not started")
		}
		return &WorkspacesOutput{Body: NewWorkspaces(snapshot)}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "get-build",
		Method:      http.MethodGet,
		Path:        "/api/build",
		Summary:     "Get build",
	}, func(ctx context.Context, input *struct{}) (*BuildOutput, error) {
		return &BuildOutput{Body: build.Current}, nil
	})

	return r
}
