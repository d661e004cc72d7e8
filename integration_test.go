package stepseries_test

import (
	"context"
	"errors"
	"net"
	"path/filepath"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/stepseries/stepseries-go/internal/fakeboard"
	"github.com/stepseries/stepseries-go/pkg/board"
	"github.com/stepseries/stepseries-go/pkg/catalog"
	"github.com/stepseries/stepseries-go/pkg/connection"
	"github.com/stepseries/stepseries-go/pkg/device"
	"github.com/stepseries/stepseries-go/pkg/log"
	"github.com/stepseries/stepseries-go/pkg/session"
	"github.com/stepseries/stepseries-go/pkg/wire"
)

// setup starts a fake board and a device bound to it through a real
// Manager and UDP transport.
func setup(t *testing.T, model board.Model, id int, mgr *connection.Manager, mutate ...func(*device.Config)) (*fakeboard.Board, *device.Device) {
	t.Helper()

	port, err := fakeboard.FreeUDPPort()
	if err != nil {
		t.Fatalf("FreeUDPPort: %v", err)
	}
	fb, err := fakeboard.Start(fakeboard.Config{
		Model:    model,
		DeviceID: id,
		Dest:     net.JoinHostPort("127.0.0.1", strconv.Itoa(port)),
	})
	if err != nil {
		t.Fatalf("Start fake board: %v", err)
	}
	t.Cleanup(func() { fb.Close() })

	host, p, _ := net.SplitHostPort(fb.Addr())
	boardPort, _ := strconv.Atoi(p)

	cfg := device.DefaultConfig(model, id)
	cfg.Address = host
	cfg.Port = boardPort
	cfg.ListenAddress = "127.0.0.1"
	cfg.ListenPort = port
	cfg.AddIDToArgs = false
	cfg.Timeout = 300 * time.Millisecond
	for _, m := range mutate {
		m(&cfg)
	}

	dev, err := device.New(cfg, mgr)
	if err != nil {
		t.Fatalf("device.New: %v", err)
	}
	t.Cleanup(func() { dev.Close() })

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := dev.Handshake(ctx); err != nil {
		t.Fatalf("Handshake: %v", err)
	}
	return fb, dev
}

func newManager(t *testing.T) *connection.Manager {
	t.Helper()
	mgr := connection.NewManager(connection.DefaultConfig())
	t.Cleanup(func() { mgr.Close() })
	return mgr
}

// TestE2E_GetSet drives a set and a targeted get through the whole stack.
func TestE2E_GetSet(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	mgr := newManager(t)
	_, dev := setup(t, board.STEP400, 1, mgr)
	ctx := context.Background()

	if err := dev.Set(ctx, catalog.SetMicrostepMode{MotorID: 3, StepSel: 4}); err != nil {
		t.Fatalf("Set: %v", err)
	}
	mode, err := session.GetOne[*catalog.MicrostepMode](ctx, dev.Session(), catalog.GetMicrostepMode{MotorID: 3})
	if err != nil {
		t.Fatalf("GetOne: %v", err)
	}
	if mode.MotorID != 3 || mode.StepSel != 4 {
		t.Errorf("MicrostepMode = %+v, want motor 3 step 4", mode)
	}

	v, err := session.GetOne[*catalog.Version](ctx, dev.Session(), catalog.GetVersion{})
	if err != nil {
		t.Fatalf("GetVersion: %v", err)
	}
	if v.FirmwareName != "STEP400_R1_unit" || v.CompileDate != "Jan 1 2022 12:00:00" {
		t.Errorf("Version = %+v", v)
	}
}

// TestE2E_Broadcast checks that a broadcast get returns one reply per unit
// for both board models.
func TestE2E_Broadcast(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	for _, model := range board.Models() {
		t.Run(model.String(), func(t *testing.T) {
			mgr := newManager(t)
			fb, dev := setup(t, model, 0, mgr)
			for id := 1; id <= model.UnitCount(); id++ {
				fb.SetValue("/microstepMode", id, int32(id))
			}

			modes, err := session.GetAll[*catalog.MicrostepMode](context.Background(), dev.Session(),
				catalog.GetMicrostepMode{MotorID: board.BroadcastMotorID})
			if err != nil {
				t.Fatalf("GetAll: %v", err)
			}
			if len(modes) != model.UnitCount() {
				t.Fatalf("got %d replies, want %d", len(modes), model.UnitCount())
			}
			for i, m := range modes {
				if m.MotorID != i+1 || m.StepSel != i+1 {
					t.Errorf("reply %d = %+v", i, m)
				}
			}
		})
	}
}

// TestE2E_BoardErrors checks that board-reported errors fail the get.
func TestE2E_BoardErrors(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	mgr := newManager(t)
	_, dev := setup(t, board.STEP400, 1, mgr)

	_, err := dev.Get(context.Background(), catalog.GetMicrostepMode{MotorID: 9})
	var cmdErr *catalog.CommandError
	if !errors.As(err, &cmdErr) {
		t.Fatalf("Get error = %v, want *catalog.CommandError", err)
	}
	if cmdErr.MotorID != 9 {
		t.Errorf("CommandError.MotorID = %d, want 9", cmdErr.MotorID)
	}
}

// TestE2E_Timeout checks that an unanswered get times out and the session
// stays usable.
func TestE2E_Timeout(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	mgr := newManager(t)
	fb, dev := setup(t, board.STEP400, 1, mgr)
	fb.Silence("/getVersion")

	_, err := dev.Get(context.Background(), catalog.GetVersion{}, session.WithTimeout(100*time.Millisecond))
	if !errors.Is(err, session.ErrTimeout) {
		t.Fatalf("Get error = %v, want ErrTimeout", err)
	}

	fb.SetValue("/microstepMode", 1, int32(2))
	if _, err := dev.Get(context.Background(), catalog.GetMicrostepMode{MotorID: 1}); err != nil {
		t.Fatalf("Get after timeout: %v", err)
	}
}

// TestE2E_Reports checks that unsolicited reports reach callbacks and that
// unsupported commands never leave the host.
func TestE2E_Reports(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	mgr := newManager(t)
	fb, dev := setup(t, board.STEP800, 1, mgr)

	var mu sync.Mutex
	var busy []*catalog.Busy
	got := make(chan struct{}, 8)
	cb := session.Typed(func(b *catalog.Busy) {
		mu.Lock()
		busy = append(busy, b)
		mu.Unlock()
		got <- struct{}{}
	})
	if err := dev.Set(context.Background(), catalog.EnableBusyReport{MotorID: 1, Enable: true}, session.WithCallback(cb)); err != nil {
		t.Fatalf("Set: %v", err)
	}

	fb.Emit(wire.NewMessage("/busy", int32(1), int32(1)), wire.NewMessage("/busy", int32(1), int32(0)))
	for i := 0; i < 2; i++ {
		select {
		case <-got:
		case <-time.After(2 * time.Second):
			t.Fatalf("report %d not delivered", i+1)
		}
	}
	mu.Lock()
	if !busy[0].State || busy[1].State {
		t.Errorf("reports out of order: %+v %+v", busy[0], busy[1])
	}
	mu.Unlock()

	before := len(fb.Received())
	var invalid *board.InvalidCommandError
	if err := dev.Set(context.Background(), catalog.SetVoltageMode{MotorID: 1}); !errors.As(err, &invalid) {
		t.Errorf("Set unsupported error = %v, want *board.InvalidCommandError", err)
	}
	time.Sleep(50 * time.Millisecond)
	if after := len(fb.Received()); after != before {
		t.Errorf("unsupported command reached the board (%d -> %d messages)", before, after)
	}
}

// TestE2E_MultipleDevices binds two boards to one manager and shuts both
// down together.
func TestE2E_MultipleDevices(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	mgr := newManager(t)
	fb1, dev1 := setup(t, board.STEP400, 1, mgr)
	fb2, dev2 := setup(t, board.STEP800, 2, mgr)
	fb1.SetValue("/microstepMode", 1, int32(1))
	fb2.SetValue("/microstepMode", 1, int32(2))

	ctx := context.Background()
	var wg sync.WaitGroup
	for i, dev := range []*device.Device{dev1, dev2} {
		wg.Add(1)
		go func() {
			defer wg.Done()
			m, err := session.GetOne[*catalog.MicrostepMode](ctx, dev.Session(), catalog.GetMicrostepMode{MotorID: 1})
			if err != nil {
				t.Errorf("device %d: %v", i+1, err)
				return
			}
			if m.StepSel != i+1 {
				t.Errorf("device %d: StepSel = %d, want %d", i+1, m.StepSel, i+1)
			}
		}()
	}
	wg.Wait()

	if got := len(mgr.Identities()); got != 2 {
		t.Fatalf("Identities() = %d, want 2", got)
	}
	if err := mgr.ShutdownAll(); err != nil {
		t.Fatalf("ShutdownAll: %v", err)
	}
	if _, err := dev1.Get(ctx, catalog.GetVersion{}); !session.IsDeviceNotBound(err) {
		t.Errorf("Get after shutdown = %v, want DeviceNotBoundError", err)
	}
}

// TestE2E_Trace records a session to a trace file and reads it back.
func TestE2E_Trace(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	path := filepath.Join(t.TempDir(), "session.slog")
	trace, err := log.NewFileLogger(path)
	if err != nil {
		t.Fatalf("NewFileLogger: %v", err)
	}

	mgr := connection.NewManager(connection.Config{Trace: trace})
	fb, dev := setup(t, board.STEP400, 1, mgr, func(c *device.Config) { c.Trace = trace })
	fb.SetValue("/microstepMode", 2, int32(3))
	if _, err := dev.Get(context.Background(), catalog.GetMicrostepMode{MotorID: 2}); err != nil {
		t.Fatalf("Get: %v", err)
	}
	if err := mgr.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if err := trace.Close(); err != nil {
		t.Fatalf("trace Close: %v", err)
	}

	r, err := log.NewFilteredReader(path, log.Filter{Category: ptr(log.CategoryCorrelation)})
	if err != nil {
		t.Fatalf("NewFilteredReader: %v", err)
	}
	defer r.Close()

	var outcomes []log.Outcome
	for {
		ev, err := r.Next()
		if err != nil {
			break
		}
		if ev.Correlation != nil && ev.Correlation.Query == "/getMicrostepMode" {
			outcomes = append(outcomes, ev.Correlation.Outcome)
		}
	}
	if len(outcomes) < 2 || outcomes[0] != log.OutcomeStarted || outcomes[len(outcomes)-1] != log.OutcomeCompleted {
		t.Errorf("correlation outcomes = %v, want started ... completed", outcomes)
	}
}

func ptr[T any](v T) *T { return &v }
