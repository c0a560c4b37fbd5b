package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"arplace/asset"
)

func main() {
	var (
		inPath  = flag.String("in", "", "Input model (builtin:<name>, .glb or .gltf).")
		outPath = flag.String("out", "", "Output .glb (export mode only).")
		mode    = flag.String("mode", "inspect", "inspect|export|resolve.")
		anim    = flag.String("anim", "", "Selection to resolve (resolve mode only).")
		dir     = flag.String("dir", "src", "Asset directory (resolve mode only).")
	)
	flag.Parse()

	switch strings.ToLower(*mode) {
	case "inspect":
		if *inPath == "" {
			fatalf("usage: mkasset -mode inspect -in model.glb")
		}
		m := load(*inPath)
		fmt.Printf("name: %s\nvertices: %d\ntriangles: %d\n", m.Name, len(m.Mesh.Vertices), len(m.Mesh.Indices)/3)
		for i, c := range m.Clips {
			fmt.Printf("clip %d: %q %s\n", i, c.Name, c.Duration)
		}
	case "export":
		if *inPath == "" || *outPath == "" {
			fatalf("usage: mkasset -mode export -in builtin:tree -out tree.glb")
		}
		if err := asset.SaveGLB(load(*inPath), *outPath); err != nil {
			fatalf("export: %v", err)
		}
	case "resolve":
		e := asset.Resolve(*anim, *dir)
		fmt.Printf("name: %s\nmodel: %s\nquicklook: %s\n", e.Name, e.Model, e.QuickLook)
	default:
		fatalf("unknown mode: %s", *mode)
	}
}

func load(p string) *asset.Model {
	m, err := asset.FileLoader{}.Load(context.Background(), p)
	if err != nil {
		fatalf("load: %v", err)
	}
	return m
}

func fatalf(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(2)
}
