package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"LumenForge/shared/config"
	"LumenForge/shared/persistence"
	"LumenForge/visualizador/internal/assets"
	"LumenForge/visualizador/internal/render"

	"github.com/go-gl/mathgl/mgl32"
)

var errUsage = errors.New("uso: inspetor <validate|matrices|lights|snapshots|show> [flags] [cena]")

type command func(args []string, out io.Writer) error

var commands = map[string]command{
	"validate":  cmdValidate,
	"matrices":  cmdMatrices,
	"lights":    cmdLights,
	"snapshots": cmdSnapshots,
	"show":      cmdShow,
}

func run(args []string, out io.Writer) error {
	if len(args) == 0 {
		return errUsage
	}
	cmd, ok := commands[args[0]]
	if !ok {
		return fmt.Errorf("comando %q desconhecido: %w", args[0], errUsage)
	}
	return cmd(args[1:], out)
}

// sceneArg devolve o arquivo de cena posicional ou o do config.
func sceneArg(fs *flag.FlagSet) string {
	if fs.NArg() > 0 {
		return fs.Arg(0)
	}
	return config.Load().Paths.Scene
}

func loadScene(path string) (*assets.Loaded, error) {
	_, loaded, err := assets.LoadFile(assets.HeadlessLoader{}, path)
	return loaded, err
}

func cmdValidate(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("validate", flag.ContinueOnError)
	fs.SetOutput(out)
	if err := fs.Parse(args); err != nil {
		return err
	}
	path := sceneArg(fs)

	loaded, err := loadScene(path)
	if err != nil {
		return err
	}
	sc := loaded.Scene
	fmt.Fprintf(out, ColorGreen+"%s OK"+ColorReset+"\n", path)
	fmt.Fprintf(out, "  malhas %d, materiais %d, entidades %d, luzes %d, câmeras %d, céu %v\n",
		len(sc.Meshes), len(sc.Materials), len(sc.Entities), len(sc.Lights), len(loaded.Cameras), sc.Sky != nil)
	return nil
}

func cmdMatrices(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("matrices", flag.ContinueOnError)
	fs.SetOutput(out)
	inverse := fs.Bool("it", false, "Mostrar também a inversa transposta")
	aspect := fs.Float64("aspect", 16.0/9.0, "Aspecto usado nas projeções das câmeras")
	if err := fs.Parse(args); err != nil {
		return err
	}

	loaded, err := loadScene(sceneArg(fs))
	if err != nil {
		return err
	}

	for _, e := range loaded.Scene.Entities {
		fmt.Fprintf(out, ColorCyan+"%s"+ColorReset+" (%s)\n", e.Name, e.ID)
		writeMatrix(out, "world", e.Transform.GetWorldMatrix())
		if *inverse {
			writeMatrix(out, "worldInvTranspose", e.Transform.GetWorldInverseTransposeMatrix())
		}
	}

	cams := assets.NewCameras(loaded.Cameras, float32(*aspect), config.DefaultConfig().Camera)
	for _, c := range cams {
		fmt.Fprintf(out, ColorCyan+"camera %s"+ColorReset+"\n", c.Name)
		writeMatrix(out, "view", c.GetView())
		writeMatrix(out, "projection", c.GetProjection())
	}
	return nil
}

func writeMatrix(out io.Writer, label string, m mgl32.Mat4) {
	fmt.Fprintf(out, "  %s:\n", label)
	for r := 0; r < 4; r++ {
		row := m.Row(r)
		fmt.Fprintf(out, "    [% 8.3f % 8.3f % 8.3f % 8.3f]\n", row[0], row[1], row[2], row[3])
	}
}

func cmdLights(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("lights", flag.ContinueOnError)
	fs.SetOutput(out)
	if err := fs.Parse(args); err != nil {
		return err
	}

	loaded, err := loadScene(sceneArg(fs))
	if err != nil {
		return err
	}
	sc := loaded.Scene

	_, count, dropped := render.PackLights(sc.Lights)
	caster := sc.ShadowCasterIndex()
	for i, l := range sc.Lights {
		mark := " "
		if i == caster {
			mark = "*"
		}
		if i >= count {
			mark = "x"
		}
		fmt.Fprintf(out, "%s %d %-12s %-11s intensidade %.2f\n", mark, i, l.Name, l.Type, l.Intensity)
	}
	fmt.Fprintf(out, "%d enviadas ao shader, %d descartadas (máximo %d)\n", count, dropped, render.MaxLights)
	return nil
}

func openStore(fs *flag.FlagSet, dir string) (*persistence.Store, error) {
	path := sceneArg(fs)
	base := filepath.Base(path)
	return persistence.Open(dir, strings.TrimSuffix(base, filepath.Ext(base)))
}

func cmdSnapshots(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("snapshots", flag.ContinueOnError)
	fs.SetOutput(out)
	dir := fs.String("dir", config.DefaultConfig().Paths.Snapshots, "Pasta dos snapshots")
	if err := fs.Parse(args); err != nil {
		return err
	}

	store, err := openStore(fs, *dir)
	if err != nil {
		return err
	}
	defer store.Close()

	list, err := store.List()
	if err != nil {
		return err
	}
	if len(list) == 0 {
		fmt.Fprintln(out, ColorYellow+"nenhum snapshot"+ColorReset)
		return nil
	}
	for _, s := range list {
		fmt.Fprintf(out, "%4d  %s  %s  %s\n", s.ID, s.CreatedAt.Format("2006-01-02 15:04:05"), s.Scene, s.Label)
	}
	return nil
}

func cmdShow(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("show", flag.ContinueOnError)
	fs.SetOutput(out)
	dir := fs.String("dir", config.DefaultConfig().Paths.Snapshots, "Pasta dos snapshots")
	id := fs.Uint("id", 0, "Snapshot (0 = o mais recente)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	store, err := openStore(fs, *dir)
	if err != nil {
		return err
	}
	defer store.Close()

	var snap *persistence.Snapshot
	if *id == 0 {
		path := sceneArg(fs)
		base := filepath.Base(path)
		snap, err = store.Latest(strings.TrimSuffix(base, filepath.Ext(base)))
	} else {
		snap, err = store.Load(*id)
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(out, ColorCyan+"snapshot %d"+ColorReset+" %s (%s)\n", snap.ID, snap.Label, snap.Scene)
	for _, e := range snap.Entities {
		p, r, s := e.Position(), e.Rotation(), e.Scale()
		fmt.Fprintf(out, "  %-12s pos %.2f %.2f %.2f  rot %.1f %.1f %.1f  escala %.2f %.2f %.2f\n", e.Name,
			p.X(), p.Y(), p.Z(),
			mgl32.RadToDeg(r.X()), mgl32.RadToDeg(r.Y()), mgl32.RadToDeg(r.Z()),
			s.X(), s.Y(), s.Z())
	}
	for _, l := range snap.Lights {
		fmt.Fprintf(out, "  luz %d %-8s intensidade %.2f\n", l.LightIndex, l.Name, l.Intensity)
	}
	for _, c := range snap.Cameras {
		p := c.Position()
		fmt.Fprintf(out, "  câmera %-8s pos %.2f %.2f %.2f\n", c.Name, p.X(), p.Y(), p.Z())
	}
	return nil
}
