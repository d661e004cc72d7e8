// Package commands implements the stepctl operations shared by the one-shot
// subcommands and the interactive shell.
package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"reflect"
	"sort"
	"strings"
	"sync"

	"github.com/stepseries/stepseries-go/pkg/catalog"
	"github.com/stepseries/stepseries-go/pkg/session"
)

// ErrUsage is wrapped by argument errors.
var ErrUsage = errors.New("usage")

// Client is the part of a device the commands drive. Both *device.Device
// and *session.Session implement it.
type Client interface {
	Get(ctx context.Context, q catalog.Query, opts ...session.GetOption) ([]catalog.Response, error)
	Set(ctx context.Context, cmd catalog.Command, opts ...session.SetOption) error
	On(kind catalog.Kind, cb *session.Callback)
	Off(cb *session.Callback)
}

// Build turns "Name arg..." into a catalog command.
func Build(args []string) (catalog.Command, error) {
	if len(args) == 0 {
		return nil, fmt.Errorf("%w: <Command> [args...]", ErrUsage)
	}
	return catalog.Build(args[0], args[1:]...)
}

// Get sends the query named by args and prints every reply.
func Get(ctx context.Context, c Client, args []string, w io.Writer) error {
	cmd, err := Build(args)
	if err != nil {
		return err
	}
	q, ok := cmd.(catalog.Query)
	if !ok {
		return fmt.Errorf("%s: %w", cmd.Name(), session.ErrNotQuery)
	}

	resps, err := c.Get(ctx, q)
	if err != nil {
		return err
	}
	for _, r := range resps {
		fmt.Fprintln(w, FormatResponse(r))
	}
	return nil
}

// Set sends the command named by args.
func Set(ctx context.Context, c Client, args []string) error {
	cmd, err := Build(args)
	if err != nil {
		return err
	}
	return c.Set(ctx, cmd)
}

// Watcher prints inbound messages of the watched kinds.
type Watcher struct {
	client Client
	w      io.Writer

	mu        sync.Mutex
	callbacks map[catalog.Kind]*session.Callback
}

// NewWatcher creates a watcher that writes to w.
func NewWatcher(c Client, w io.Writer) *Watcher {
	return &Watcher{
		client:    c,
		w:         w,
		callbacks: make(map[catalog.Kind]*session.Callback),
	}
}

// Watch starts printing messages of each named kind. No names watches
// everything.
func (wt *Watcher) Watch(names ...string) error {
	kinds, err := ParseKinds(names)
	if err != nil {
		return err
	}

	wt.mu.Lock()
	defer wt.mu.Unlock()
	for _, k := range kinds {
		if _, ok := wt.callbacks[k]; ok {
			continue
		}
		cb := session.NewCallback(wt.print)
		wt.callbacks[k] = cb
		wt.client.On(k, cb)
	}
	return nil
}

// Unwatch stops the named kinds, or every kind when names is empty.
func (wt *Watcher) Unwatch(names ...string) error {
	wt.mu.Lock()
	defer wt.mu.Unlock()

	if len(names) == 0 {
		for k, cb := range wt.callbacks {
			wt.client.Off(cb)
			delete(wt.callbacks, k)
		}
		return nil
	}

	kinds, err := ParseKinds(names)
	if err != nil {
		return err
	}
	for _, k := range kinds {
		if cb, ok := wt.callbacks[k]; ok {
			wt.client.Off(cb)
			delete(wt.callbacks, k)
		}
	}
	return nil
}

// Watching returns the watched kinds, sorted.
func (wt *Watcher) Watching() []catalog.Kind {
	wt.mu.Lock()
	defer wt.mu.Unlock()
	out := make([]catalog.Kind, 0, len(wt.callbacks))
	for k := range wt.callbacks {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Run watches names until ctx ends.
func (wt *Watcher) Run(ctx context.Context, names ...string) error {
	if err := wt.Watch(names...); err != nil {
		return err
	}
	<-ctx.Done()
	return wt.Unwatch()
}

func (wt *Watcher) print(r catalog.Response) {
	wt.mu.Lock()
	defer wt.mu.Unlock()
	fmt.Fprintln(wt.w, FormatResponse(r))
}

// ParseKinds resolves kind names. An empty list is the wildcard.
func ParseKinds(names []string) ([]catalog.Kind, error) {
	if len(names) == 0 {
		return []catalog.Kind{catalog.Any}, nil
	}
	kinds := make([]catalog.Kind, 0, len(names))
	for _, n := range names {
		k, ok := catalog.ParseKind(n)
		if !ok {
			return nil, fmt.Errorf("unknown message kind %q", n)
		}
		kinds = append(kinds, k)
	}
	return kinds, nil
}

// FormatResponse renders r as "Kind field=value ...".
func FormatResponse(r catalog.Response) string {
	if pe, ok := r.(*catalog.ParseError); ok {
		return fmt.Sprintf("%s %v", catalog.KindParseError, pe)
	}

	v := reflect.Indirect(reflect.ValueOf(r))
	if v.Kind() != reflect.Struct {
		return fmt.Sprintf("%s %v", r.Kind(), r)
	}

	var b strings.Builder
	b.WriteString(string(r.Kind()))
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		fmt.Fprintf(&b, " %s=%v", f.Name, v.Field(i).Interface())
	}
	return b.String()
}

// Matching returns the command names containing substr, case-insensitive.
func Matching(substr string) []string {
	names := catalog.CommandNames()
	if substr == "" {
		return names
	}
	substr = strings.ToLower(substr)
	var out []string
	for _, n := range names {
		if strings.Contains(strings.ToLower(n), substr) {
			out = append(out, n)
		}
	}
	return out
}
