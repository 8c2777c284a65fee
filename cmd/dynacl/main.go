package main

import (
	"fmt"
	"log"
	"os"
	"runtime"
	"strings"
	"unsafe"

	"github.com/ZenLiuCN/dynacl"
	"github.com/ZenLiuCN/dynacl/cl"
	"github.com/urfave/cli/v2"
)

func main() {
	app := cli.NewApp()
	app.Usage = "OpenCL runtime loader probe"
	app.Name = "dynacl"
	app.Description = "load an OpenCL library at runtime, report binding status and query platforms"
	app.Flags = []cli.Flag{
		&cli.BoolFlag{
			Name:    "debug",
			Aliases: []string{"d"},
		},
		&cli.StringFlag{
			Name:    "lib",
			Aliases: []string{"l"},
			EnvVars: []string{"DYNACL_LIBRARY"},
			Usage:   "OpenCL library name or path, default to the platform ICD loader",
		},
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			EnvVars: []string{"DYNACL_CONFIG"},
			Usage:   "YAML config with library, debug and search",
		},
	}
	app.Action = probe
	app.Commands = []*cli.Command{
		{
			Name:   "probe",
			Action: probe,
			Usage:  "bind the library and count platforms",
		},
		{
			Name:   "platforms",
			Action: platforms,
			Usage:  "display name, vendor and version of every platform",
		},
		{
			Name:   "symbols",
			Action: symbols,
			Usage:  "display entry points in binding order",
		},
		{
			Name:   "missing",
			Action: missing,
			Usage:  "display entry points the library does not export",
		},
		{
			Name:   "locate",
			Action: locate,
			Usage:  "display searched directories and the resolved library",
		},
	}
	if err := app.Run(os.Args); err != nil {
		log.Fatalf("failure %s", err)
	}
}

func config(ctx *cli.Context) (c Config, err error) {
	if c, err = LoadConfig(ctx.String("config")); err != nil {
		return
	}
	if ctx.IsSet("lib") {
		c.Library = ctx.String("lib")
	}
	if ctx.IsSet("debug") {
		c.Debug = ctx.Bool("debug")
	}
	return
}

// bind initializes the process-wide library, anything but Success is an error.
func bind(ctx *cli.Context) (err error) {
	var c Config
	if c, err = config(ctx); err != nil {
		return
	}
	dynacl.SetDebug(c.Debug)
	path := c.Resolve(runtime.GOOS)
	if c.Debug {
		log.Printf("load %s", path)
	}
	st := dynacl.Init(path)
	if st == dynacl.Success {
		return
	}
	l := dynacl.Default()
	if s, ok := l.FailedSymbol(); ok {
		err = fmt.Errorf("%s: %w (%d of %d bound, failed at %s)", path, st, l.Bound(), len(dynacl.Symbols()), s)
	} else {
		err = fmt.Errorf("%s: %w: %v", path, st, l.LastError())
	}
	dynacl.Shutdown()
	return
}

func probe(ctx *cli.Context) (err error) {
	if err = bind(ctx); err != nil {
		return
	}
	defer dynacl.Shutdown()
	l := dynacl.Default()
	fmt.Printf("%s: %s, %d entry points\n", l.Path(), dynacl.Success.String(), l.Bound())
	var n cl.Uint
	if rc := cl.GetPlatformIDs(0, nil, &n); rc != cl.Success {
		return fmt.Errorf("clGetPlatformIDs: %d", rc)
	}
	fmt.Printf("%d platforms\n", n)
	return
}

func platforms(ctx *cli.Context) (err error) {
	if err = bind(ctx); err != nil {
		return
	}
	defer dynacl.Shutdown()
	var n cl.Uint
	if rc := cl.GetPlatformIDs(0, nil, &n); rc != cl.Success {
		return fmt.Errorf("clGetPlatformIDs: %d", rc)
	}
	if n == 0 {
		return
	}
	ids := make([]cl.PlatformID, n)
	if rc := cl.GetPlatformIDs(n, &ids[0], nil); rc != cl.Success {
		return fmt.Errorf("clGetPlatformIDs: %d", rc)
	}
	for i, id := range ids {
		fmt.Printf("#%d\n", i)
		for _, q := range []struct {
			name  string
			param cl.Uint
		}{
			{"name", cl.PlatformName},
			{"vendor", cl.PlatformVendor},
			{"version", cl.PlatformVersion},
			{"profile", cl.PlatformProfile},
		} {
			var v string
			if v, err = platformInfo(id, q.param); err != nil {
				return
			}
			fmt.Printf("\t%-8s %s\n", q.name, v)
		}
	}
	return
}

func platformInfo(id cl.PlatformID, param cl.Uint) (string, error) {
	var n uintptr
	if rc := cl.GetPlatformInfo(id, param, 0, nil, &n); rc != cl.Success {
		return "", fmt.Errorf("clGetPlatformInfo %#x: %d", param, rc)
	}
	if n == 0 {
		return "", nil
	}
	b := make([]byte, n)
	if rc := cl.GetPlatformInfo(id, param, n, unsafe.Pointer(&b[0]), nil); rc != cl.Success {
		return "", fmt.Errorf("clGetPlatformInfo %#x: %d", param, rc)
	}
	return strings.TrimRight(string(b), "\x00"), nil
}

func symbols(ctx *cli.Context) error {
	for i, s := range dynacl.Symbols() {
		fmt.Printf("%3d %s\n", i, s.Name())
	}
	if dynacl.Legacy {
		fmt.Println("deprecated OpenCL 1.0 entry points included")
	}
	return nil
}

func missing(ctx *cli.Context) (err error) {
	var c Config
	if c, err = config(ctx); err != nil {
		return
	}
	l := dynacl.New(dynacl.System(), c.Debug)
	path := c.Resolve(runtime.GOOS)
	st := l.Init(path)
	defer l.Shutdown()
	switch st {
	case dynacl.Success:
		fmt.Printf("%s: all %d entry points exported\n", path, l.Bound())
		return
	case dynacl.ImportError:
	default:
		return fmt.Errorf("%s: %w: %v", path, st, l.LastError())
	}
	var v []string
	if v, err = l.MissingSymbols(); err != nil {
		return
	}
	fmt.Printf("%s: %d missing\n", path, len(v))
	for _, s := range v {
		fmt.Printf("\t%s\n", s)
	}
	return
}

func locate(ctx *cli.Context) (err error) {
	var c Config
	if c, err = config(ctx); err != nil {
		return
	}
	for _, d := range dynacl.LibDirs(runtime.GOOS, c.Search...) {
		fmt.Println(d)
	}
	name := c.Library
	if name == "" {
		name = dynacl.DefaultLibraryName(runtime.GOOS)
	}
	var p string
	if p, err = dynacl.FindLibrary(name, runtime.GOOS, c.Search...); err != nil {
		return
	}
	fmt.Printf("resolved: %s\n", p)
	return
}
