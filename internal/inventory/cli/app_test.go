package cli

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/aussiebroadwan/inventory/internal/inventory/domain"
	"github.com/aussiebroadwan/inventory/internal/inventory/service"
	"github.com/aussiebroadwan/inventory/internal/inventory/store/drivers/sqlite"
	"github.com/aussiebroadwan/inventory/pkg/cryptox"
	"github.com/aussiebroadwan/inventory/pkg/slogx"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "inventory-cli")
	if err != nil {
		panic(err)
	}
	cryptox.SetPepperPath(filepath.Join(dir, "pepper"))

	code := m.Run()
	_ = os.RemoveAll(dir)
	os.Exit(code)
}

type harness struct {
	store  *sqlite.Store
	svc    Services
	export string
}

func newHarness(t *testing.T) *harness {
	t.Helper()

	s, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	require.NoError(t, s.ApplyMigrations())

	dir := t.TempDir()
	return &harness{
		store:  s,
		export: dir,
		svc: Services{
			Credentials: service.NewCredentialService(s, service.DefaultLoginLimit, nil),
			Materials:   &service.MaterialService{Store: s},
			Reports: &service.ReportService{
				Store:  s,
				Dir:    dir,
				Format: "csv",
				Now:    func() time.Time { return time.Date(2024, 5, 6, 7, 8, 9, 0, time.UTC) },
			},
		},
	}
}

// run feeds script to a fresh App and returns everything it printed.
func (h *harness) run(t *testing.T, script ...string) string {
	t.Helper()

	var out bytes.Buffer
	a := New(h.svc, strings.NewReader(strings.Join(script, "\n")+"\n"), &out)
	a.readPassword = linePasswordReader(a.in, a.out)

	ctx := slogx.WithContext(context.Background(), slogx.Discard())
	require.NoError(t, a.Run(ctx))
	return out.String()
}

func (h *harness) materials(t *testing.T) []domain.Material {
	t.Helper()
	items, err := h.store.Materials().ListMaterials(context.Background())
	require.NoError(t, err)
	return items
}

func TestRegisterAndLogin(t *testing.T) {
	h := newHarness(t)

	out := h.run(t,
		"register", "admin", "secret",
		"register", "admin", "secret",
		"login", "admin", "wrong",
		"login", "Admin", "secret",
		"login", "admin", "secret",
		"logout",
		"exit",
	)

	require.Contains(t, out, "Success: User registered successfully")
	require.Contains(t, out, "Error: Username already exists")
	require.Equal(t, 2, strings.Count(out, "Error: Invalid credentials"))
	require.Contains(t, out, "Success: Logged in as admin")
	require.Contains(t, out, "Info: Logged out")
	require.Contains(t, out, "Bye!")
}

func TestPasswordKeepsSurroundingSpaces(t *testing.T) {
	h := newHarness(t)

	out := h.run(t,
		"register", "admin", "  secret ",
		"login", "admin", "secret",
		"login", "admin", "  secret ",
	)
	require.Contains(t, out, "Error: Invalid credentials")
	require.Contains(t, out, "Success: Logged in as admin")
}

func TestLinePasswordReader(t *testing.T) {
	var out bytes.Buffer
	r := bufio.NewReader(strings.NewReader(" a b \r\nlast "))
	read := linePasswordReader(r, &out)

	pw, err := read()
	require.NoError(t, err)
	require.Equal(t, " a b ", pw)

	pw, err = read()
	require.NoError(t, err)
	require.Equal(t, "last ", pw)

	_, err = read()
	require.ErrorIs(t, err, io.EOF)
	require.Equal(t, "Password: Password: Password: ", out.String())
}

func TestMaterialCommandsNeedLogin(t *testing.T) {
	h := newHarness(t)

	out := h.run(t, "add", "help")
	require.Contains(t, out, "Unknown command: add")
	require.Contains(t, out, "Available commands: register, login, exit")
}

func TestMaterialLifecycle(t *testing.T) {
	h := newHarness(t)

	out := h.run(t,
		"register", "admin", "secret",
		"login", "admin", "secret",
		"add", "Bolt", "123456", "10", "pcs",
		"add", "Other", "123456", "1", "kg",
		"add", "Nut", "", "1", "kg",
		"add", "Washer", "777", "many", "kg",
		"update",
		"update 1", "", "", "25", "",
		"update 99",
		"delete",
		"delete 99",
		"find 123456",
	)

	require.Contains(t, out, "Success: Material added successfully")
	require.Contains(t, out, "Error: Material already exists")
	require.Contains(t, out, "Warning: All fields are required")
	require.Contains(t, out, "Error: Quantity must be a whole number")
	require.Contains(t, out, "Warning: Select a material to update")
	require.Contains(t, out, "Success: Material updated successfully")
	require.Contains(t, out, "Warning: Select a material to delete")
	require.Equal(t, 2, strings.Count(out, "Error: Material not found"))

	require.Equal(t, []domain.Material{{ID: 1, Name: "Bolt", Barcode: "123456", Quantity: 25, Unit: "pcs"}}, h.materials(t))

	out = h.run(t, "login", "admin", "secret", "delete 1", "list")
	require.Contains(t, out, "Success: Material deleted successfully")
	require.Contains(t, out, "Materials: No materials found.")
	require.Empty(t, h.materials(t))
}

func TestReportAndExport(t *testing.T) {
	h := newHarness(t)

	out := h.run(t,
		"register", "admin", "secret",
		"login", "admin", "secret",
		"report",
		"export",
	)
	require.Contains(t, out, "Inventory Report: No materials found.")
	require.Contains(t, out, "Export to Excel: No materials found.")

	out = h.run(t,
		"login", "admin", "secret",
		"add", "Bolt", "123456", "10", "pcs",
		"report",
		"export", "-",
		"export", "",
	)
	require.Contains(t, out, "1\tBolt\t123456\t10\tpcs")
	require.Contains(t, out, "Export to Excel: Export cancelled")

	want := filepath.Join(h.export, "materials_report_20240506_070809.csv")
	require.Contains(t, out, "Export to Excel: Report exported to "+want)

	bad := filepath.Join(h.export, "missing", "out.csv")
	out = h.run(t, "login", "admin", "secret", "export", bad)
	require.Contains(t, out, "Export to Excel: Could not write "+bad+"\n")
	require.NotContains(t, out, "export write failed")

	b, err := os.ReadFile(want)
	require.NoError(t, err)
	require.Equal(t, "ID,Name,Barcode,Quantity,Unit\n1,Bolt,123456,10,pcs\n", string(b))
}

func TestRunFinishesCommandBeforeStopping(t *testing.T) {
	h := newHarness(t)

	ctx, cancel := context.WithCancel(slogx.WithContext(context.Background(), slogx.Discard()))
	defer cancel()

	var out bytes.Buffer
	a := New(h.svc, strings.NewReader("register\nadmin\nhelp\n"), &out)
	var busyDuring bool
	a.readPassword = func() (string, error) {
		busyDuring = a.Busy()
		cancel()
		return "secret", nil
	}

	require.NoError(t, a.Run(ctx))
	require.True(t, busyDuring)
	require.False(t, a.Busy())
	require.Contains(t, out.String(), "Success: User registered successfully")
	require.NotContains(t, out.String(), "Available commands")
}

func TestRunStopsAtEOF(t *testing.T) {
	h := newHarness(t)
	out := h.run(t, "help")
	require.NotContains(t, out, "Bye!")
}
