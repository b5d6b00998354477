package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/alexozer/river"
	"github.com/alexozer/river/intersect"
	"github.com/alexozer/river/preview"
	"github.com/alexozer/river/riverfile"
	"github.com/alexozer/river/wavefront"
	"github.com/tdewolff/argp"
	"github.com/ungerik/go3d/float64/vec3"
)

type Build struct {
	Smoothing int     `short:"s" default:"-1" desc:"Smoothing level override, 0 to 10"`
	UVScale   float64 `short:"u" default:"0" desc:"UV scale override"`
	Output    string  `short:"o" desc:"OBJ output file"`
	Preview   string  `short:"p" desc:"PNG preview output file"`
	Size      int     `default:"512" desc:"Preview size in pixels"`
	Verbose   bool    `short:"v" desc:"Debug logging"`
	Input     string  `index:"0" desc:"River file"`
}

type New struct {
	Width     float64 `short:"w" default:"2" desc:"Initial half-width"`
	Smoothing int     `short:"s" default:"2" desc:"Smoothing level, 0 to 10"`
	UVScale   float64 `short:"u" default:"0.05" desc:"UV scale"`
	Verbose   bool    `short:"v" desc:"Debug logging"`
	Output    string  `index:"0" desc:"River file"`
}

type Add struct {
	Verbose bool    `short:"v" desc:"Debug logging"`
	Input   string  `index:"0" desc:"River file"`
	X       float64 `index:"1" desc:"World X"`
	Y       float64 `index:"2" desc:"World Y"`
	Z       float64 `index:"3" desc:"World Z"`
}

type Insert struct {
	First   int     `short:"f" default:"-1" desc:"First control point of the pair"`
	Second  int     `short:"s" default:"-1" desc:"Second control point of the pair"`
	Verbose bool    `short:"v" desc:"Debug logging"`
	Input   string  `index:"0" desc:"River file"`
	X       float64 `index:"1" desc:"World X"`
	Y       float64 `index:"2" desc:"World Y"`
	Z       float64 `index:"3" desc:"World Z"`
}

type Remove struct {
	Verbose bool   `short:"v" desc:"Debug logging"`
	Input   string `index:"0" desc:"River file"`
	Index   int    `index:"1" desc:"Control point index"`
}

type Pick struct {
	Height  float64 `default:"1000" desc:"Height the downward ray starts from"`
	Radius  float64 `short:"r" default:"1" desc:"Handle grab radius"`
	Verbose bool    `short:"v" desc:"Debug logging"`
	Input   string  `index:"0" desc:"River file"`
	X       float64 `index:"1" desc:"World X"`
	Z       float64 `index:"2" desc:"World Z"`
}

func main() {
	root := argp.NewCmd(&Build{}, "River strip mesh generator")
	root.AddCmd(&New{}, "new", "Create a river file with one control point")
	root.AddCmd(&Add{}, "add", "Append a control point")
	root.AddCmd(&Insert{}, "insert", "Insert a control point between two neighbours")
	root.AddCmd(&Remove{}, "remove", "Remove a control point")
	root.AddCmd(&Pick{}, "pick", "Find the control points under a position")
	root.Parse()
	root.PrintHelp()
}

func setupLogging(verbose bool) {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	river.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}

func (cmd *Build) Run() error {
	setupLogging(cmd.Verbose)
	if cmd.Input == "" {
		return argp.ShowUsage
	}

	r, err := riverfile.Load(cmd.Input)
	if err != nil {
		return err
	}

	var opts []river.Option
	if cmd.Smoothing >= 0 {
		opts = append(opts, river.WithSmoothingLevel(cmd.Smoothing))
	}
	if cmd.UVScale > 0 {
		opts = append(opts, river.WithUVScale(cmd.UVScale))
	}
	mesh := r.Configure(opts...)

	if cmd.Output != "" {
		f, err := os.Create(cmd.Output)
		if err != nil {
			return err
		}
		if err := wavefront.Write(f, mesh, "river"); err != nil {
			f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return err
		}
	}

	if cmd.Preview != "" {
		popts := preview.DefaultOptions()
		popts.Width, popts.Height = cmd.Size, cmd.Size

		f, err := os.Create(cmd.Preview)
		if err != nil {
			return err
		}
		if err := preview.WritePNG(f, mesh, popts); err != nil {
			f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return err
		}
	}

	fmt.Printf("%d control points, %d vertices, %d triangles, length %.3f\n",
		r.Len(), mesh.VertexCount(), mesh.TriangleCount(), mesh.CenterLength)
	return nil
}

func (cmd *New) Run() error {
	setupLogging(cmd.Verbose)
	if cmd.Output == "" {
		return argp.ShowUsage
	}

	r := river.New(vec3.Zero,
		river.WithWidth(cmd.Width),
		river.WithSmoothingLevel(cmd.Smoothing),
		river.WithUVScale(cmd.UVScale),
	)
	return riverfile.Save(cmd.Output, r)
}

func (cmd *Add) Run() error {
	setupLogging(cmd.Verbose)
	return edit(cmd.Input, func(r *river.River) error {
		r.Add(vec3.T{cmd.X, cmd.Y, cmd.Z})
		return nil
	})
}

func (cmd *Insert) Run() error {
	setupLogging(cmd.Verbose)
	return edit(cmd.Input, func(r *river.River) error {
		pair := river.Pair{First: cmd.First, Second: cmd.Second}
		if pair.First < 0 && pair.Second < 0 {
			// no pair given: use the span nearest to the position
			nearest, ok := r.Nearest(vec3.T{cmd.X, cmd.Y, cmd.Z})
			if !ok {
				return fmt.Errorf("river has no span to insert into")
			}
			pair = nearest.Pair
		}
		return r.Insert(pair, vec3.T{cmd.X, cmd.Y, cmd.Z})
	})
}

func (cmd *Remove) Run() error {
	setupLogging(cmd.Verbose)
	return edit(cmd.Input, func(r *river.River) error {
		if !r.Remove(cmd.Index) {
			return fmt.Errorf("cannot remove control point %d of %d", cmd.Index, r.Len())
		}
		return nil
	})
}

func (cmd *Pick) Run() error {
	setupLogging(cmd.Verbose)
	if cmd.Input == "" {
		return argp.ShowUsage
	}

	r, err := riverfile.Load(cmd.Input)
	if err != nil {
		return err
	}

	ray := intersect.Ray{
		Origin: vec3.T{cmd.X, cmd.Height, cmd.Z},
		Dir:    vec3.T{0, -1, 0},
	}

	if i, ok := intersect.PickControlPoint(r, ray, cmd.Radius); ok {
		fmt.Printf("control point %d\n", i)
	}

	hit, ok := intersect.Pick(r, ray)
	if !ok {
		fmt.Println("no hit")
		return nil
	}

	fmt.Printf("hit %.3f %.3f %.3f face %d between control points %d and %d\n",
		hit.Position[0], hit.Position[1], hit.Position[2], hit.FaceIndex, hit.Pair.First, hit.Pair.Second)
	return nil
}

// edit loads a river file, applies fn and saves the result in place
func edit(filename string, fn func(*river.River) error) error {
	if filename == "" {
		return argp.ShowUsage
	}

	r, err := riverfile.Load(filename)
	if err != nil {
		return err
	}

	if err := fn(r); err != nil {
		return err
	}

	return riverfile.Save(filename, r)
}
