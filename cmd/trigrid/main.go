// Command trigrid indexes a Wavefront OBJ file with a uniform grid or
// reports which of its objects lie within a distance tolerance of each
// other.
//
// Usage:
//
//	trigrid grid -obj model.obj -res 32 [-validate]
//	trigrid collide -obj model.obj -eps 0.01 [-matrix]
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/katalvlaran/trigrid/collision"
	"github.com/katalvlaran/trigrid/mesh"
	"github.com/katalvlaran/trigrid/unigrid"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	var err error
	switch os.Args[1] {
	case "grid":
		err = runGrid(os.Args[2:])
	case "collide":
		err = runCollide(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "trigrid:", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `usage:
  trigrid grid    -obj model.obj -res 32 [-validate]
  trigrid collide -obj model.obj -eps 0.01 [-matrix]`)
}

// runGrid builds a uniform grid over the OBJ's faces and prints
// occupancy statistics.
func runGrid(args []string) error {
	fs := flag.NewFlagSet("grid", flag.ExitOnError)
	objPath := fs.String("obj", "", "Wavefront OBJ file to index")
	res := fs.Int("res", 0, "cells per axis (default: derived from face count)")
	validate := fs.Bool("validate", false, "self-check the grid after building")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *objPath == "" {
		return fmt.Errorf("missing -obj")
	}

	m, err := mesh.LoadOBJ(*objPath)
	if err != nil {
		return err
	}
	r := *res
	if r < 1 {
		r = collision.DefaultResolution(m.FaceCount())
	}

	g, err := unigrid.Build(m, r, r, r)
	if err != nil {
		return err
	}
	if *validate {
		if err := unigrid.Validate(g, m, 1); err != nil {
			return err
		}
	}

	s := g.Stats()
	fmt.Printf("faces:        %d\n", m.FaceCount())
	fmt.Printf("parts:        %d\n", m.PartCount())
	fmt.Printf("resolution:   %d x %d x %d\n", r, r, r)
	fmt.Printf("pairs:        %d\n", s.Pairs)
	fmt.Printf("empty cells:  %d of %d\n", s.EmptyCells, g.CellCount())
	fmt.Printf("max per cell: %d\n", s.MaxPerCell)
	fmt.Printf("mean per cell: %.2f\n", s.MeanPerCell)

	return nil
}

// runCollide prints the ε-proximity edges between the OBJ's objects,
// or the full adjacency matrix with -matrix.
func runCollide(args []string) error {
	fs := flag.NewFlagSet("collide", flag.ExitOnError)
	objPath := fs.String("obj", "", "Wavefront OBJ file to test")
	eps := fs.Float64("eps", 0.01, "distance tolerance")
	matrix := fs.Bool("matrix", false, "print the dense adjacency matrix")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *objPath == "" {
		return fmt.Errorf("missing -obj")
	}

	m, err := mesh.LoadOBJ(*objPath)
	if err != nil {
		return err
	}
	g, err := collision.Detect(m, *eps)
	if err != nil {
		return err
	}

	if *matrix {
		mat, n := g.ToAdjacencyMatrix()
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if j > 0 {
					fmt.Print(" ")
				}
				fmt.Print(mat[i*n+j])
			}
			fmt.Println()
		}

		return nil
	}

	fmt.Printf("parts: %d, colliding pairs: %d\n", g.NodeCount(), g.EdgeCount())
	for _, e := range g.Edges() {
		fmt.Printf("  %d -- %d\n", e.U, e.V)
	}
	fmt.Println("contact clusters:")
	for _, comp := range g.ConnectedComponents() {
		fmt.Printf("  %v\n", comp)
	}

	return nil
}
