package ui

import (
	"context"
	"errors"
	"image"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"time"

	"github.com/Yeicor/pointplot-ui/internal"
	"github.com/Yeicor/pointplot-ui/plot"
	"github.com/barkimedes/go-deepcopy"
	"github.com/deadsy/sdfx/vec/v2i"
	"github.com/hajimehoshi/ebiten"
	"github.com/subchen/go-trylock/v2"
)

// defaultMarkerCells is the detail of the round marker meshes.
const defaultMarkerCells = 12

// errShutdown stops the ebiten loop after a termination signal.
var errShutdown = errors.New("shutdown requested")

// Renderer is a 3D point plot viewer: it loads a data file, shows its points as colored markers and lets the user
// explore them with the mouse while editing the display parameters.
type Renderer struct {
	session *plot.Session
	form    *internal.Form
	// Cached value labels of the loaded data set
	minLabel, maxLabel string
	// Renderer implementation and its state
	impl      internal.DevRendererImpl
	implState *internal.RendererState
	// Cached renders
	cachedRender     *ebiten.Image
	lastRender       *image.RGBA // Latest finished render (never modified once published)
	lastRenderDirty  bool        // Whether lastRender was not uploaded to cachedRender yet
	cachedRenderLock *sync.RWMutex
	renderingLock    trylock.TryLocker // Held while a render is running
	renderCancel     context.CancelFunc
	// Screen size, as reported by Layout
	screenSize v2i.Vec
	layoutSize v2i.Vec
	layoutLock *sync.Mutex
	// Configuration
	watchFile     bool
	watchDebounce time.Duration
	watcher       *internal.FileWatcher
	snapshotDir   string
	signals       chan os.Signal
}

// NewRenderer see Renderer. The path may be empty to start without data (type it in the File field).
func NewRenderer(path string, opts ...Option) *Renderer {
	impl, err := internal.NewRenderer3(defaultMarkerCells)
	if err != nil {
		panic(err) // Only fails for invalid cell counts
	}
	r := &Renderer{
		session:          plot.NewSession(),
		form:             internal.NewForm(),
		impl:             impl,
		cachedRenderLock: &sync.RWMutex{},
		renderingLock:    trylock.New(),
		layoutLock:       &sync.Mutex{},
		watchFile:        true,
		watchDebounce:    200 * time.Millisecond,
		snapshotDir:      ".",
		signals:          make(chan os.Signal, 1),
	}
	r.implState = r.newRendererState()
	r.form.Values[internal.FieldFile] = path
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run starts the UI and blocks until the window is closed or the process is interrupted.
func (r *Renderer) Run() error {
	if r.watchFile {
		w, err := newFsWatcher()
		if err != nil {
			log.Println("[PointPlot] File watching not available:", err)
		} else {
			r.watcher = internal.NewFileWatcher(w, r.watchDebounce)
			defer func() {
				if err := r.watcher.Close(); err != nil {
					log.Println("[PointPlot] Error closing the file watcher:", err)
				}
			}()
		}
	}
	signal.Notify(r.signals, signals()...)
	defer signal.Stop(r.signals)

	ebiten.SetWindowTitle(r.session.Title())
	r.load(r.form.Path())
	err := ebiten.RunGame(rendererEbitenGame{r})
	if r.renderCancel != nil {
		r.renderCancel()
	}
	if errors.Is(err, errShutdown) {
		return nil
	}
	return err
}

// load reads the data file and displays it. Errors are logged and keep the previous data set.
func (r *Renderer) load(path string) {
	if path == "" {
		return // No file selected
	}
	f, err := os.Open(path)
	if err != nil {
		log.Println("[PointPlot] Error opening data file:", err)
		return
	}
	defer f.Close()
	startTime := time.Now()
	r.session.Params = r.form.Params()
	displayed, err := r.session.Load(path, f)
	if err != nil {
		log.Println("[PointPlot] Error loading data file:", err)
		return
	}
	r.minLabel, r.maxLabel = r.session.MinValueLabel(), r.session.MaxValueLabel()
	if r.minLabel != "" && r.form.SeedDisplayRange(r.minLabel, r.maxLabel) {
		r.session.Params = r.form.Params()
		displayed = r.session.Redisplay()
	}
	log.Println("[PointPlot] Loaded", len(r.session.Points), "points from", path, "in", time.Since(startTime))
	ebiten.SetWindowTitle(r.session.Title())
	if r.watcher != nil {
		if err = r.watcher.Watch(path); err != nil {
			log.Println("[PointPlot] Error watching data file:", err)
		}
	}
	if displayed {
		r.rerender()
	}
}

// redisplay rebuilds the scene from the current fields, keeping the data set.
func (r *Renderer) redisplay() {
	r.session.Params = r.form.Params()
	if r.session.Redisplay() {
		r.rerender()
	}
}

// rerender cancels the current render (if any) and starts a new one in the background.
func (r *Renderer) rerender(callbacks ...func(err error)) {
	if r.screenSize.X <= 0 || r.screenSize.Y <= 0 {
		return // Not laid out yet: the first Layout will trigger a render
	}
	if r.renderCancel != nil {
		r.renderCancel()
	}
	var ctx context.Context
	ctx, r.renderCancel = context.WithCancel(context.Background())
	// The render goroutine only sees copies (and the immutable scene)
	state := deepcopy.MustAnything(r.implState).(*internal.RendererState)
	state.View = r.session.View
	scene := r.session.Scene
	renderSize := v2i.Vec{X: max(1, r.screenSize.X/state.ResInv), Y: max(1, r.screenSize.Y/state.ResInv)}
	go func() {
		r.renderingLock.Lock()
		defer r.renderingLock.Unlock()
		err := ctx.Err()
		if err == nil {
			fullRender := image.NewRGBA(image.Rect(0, 0, renderSize.X, renderSize.Y))
			err = r.impl.Render(&internal.RenderArgs{
				Ctx:              ctx,
				State:            state,
				Scene:            scene,
				CachedRenderLock: r.cachedRenderLock,
				FullRender:       fullRender,
			})
			if err == nil {
				r.cachedRenderLock.Lock()
				r.lastRender = fullRender
				r.lastRenderDirty = true
				r.cachedRenderLock.Unlock()
			} else if !errors.Is(err, context.Canceled) {
				log.Println("[PointPlot] Error rendering:", err)
			}
		}
		for _, callback := range callbacks {
			callback(err)
		}
	}()
}

// snapshot saves the latest render with its legend as a PNG file.
func (r *Renderer) snapshot() {
	r.cachedRenderLock.RLock()
	img := r.lastRender
	r.cachedRenderLock.RUnlock()
	if img == nil {
		return
	}
	s := &internal.Snapshot{
		Render:   img,
		Title:    r.session.Title(),
		RangeMin: r.form.Values[internal.FieldDisplayMin],
		RangeMax: r.form.Values[internal.FieldDisplayMax],
	}
	path := filepath.Join(r.snapshotDir, internal.SnapshotFileName(time.Now()))
	go func() {
		if err := s.Save(path); err != nil {
			log.Println("[PointPlot] Error saving snapshot:", err)
			return
		}
		log.Println("[PointPlot] Saved snapshot to", path)
	}()
}
