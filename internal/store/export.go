package store

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"os"
	"strconv"

	"github.com/BanaanKiamanesh/Shilling/internal/ode"
)

// RunMeta identifies which method produced a trajectory.
type RunMeta struct {
	Problem string  `json:"problem"`
	Method  string  `json:"method"`
	Order   int     `json:"order"`
	Stages  int     `json:"stages"`
	Dt      float64 `json:"dt"`
	T0      float64 `json:"t0"`
	Tf      float64 `json:"tf"`
}

type exportData struct {
	RunMeta
	Samples int         `json:"samples"`
	Times   []float64   `json:"times"`
	States  [][]float64 `json:"states"`
}

// WriteJSON encodes the run as indented JSON.
func WriteJSON(w io.Writer, meta RunMeta, traj *ode.Trajectory) error {
	data := exportData{
		RunMeta: meta,
		Samples: traj.Len(),
		Times:   traj.Times,
		States:  make([][]float64, traj.Len()),
	}
	for i, s := range traj.States {
		data.States[i] = s
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}

// ExportJSON writes the run to a file.
func ExportJSON(path string, meta RunMeta, traj *ode.Trajectory) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return WriteJSON(file, meta, traj)
}

// WriteCSV emits one row per sample: t, y0, y1, ...
func WriteCSV(w io.Writer, traj *ode.Trajectory) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	dim := 0
	if traj.Len() > 0 {
		dim = len(traj.States[0])
	}
	header := make([]string, dim+1)
	header[0] = "t"
	for j := 0; j < dim; j++ {
		header[j+1] = "y" + strconv.Itoa(j)
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	row := make([]string, dim+1)
	for i := 0; i < traj.Len(); i++ {
		t, state := traj.At(i)
		row[0] = strconv.FormatFloat(t, 'g', -1, 64)
		for j, v := range state {
			row[j+1] = strconv.FormatFloat(v, 'g', -1, 64)
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	return cw.Error()
}

// ExportCSV writes sample rows to a file.
func ExportCSV(path string, traj *ode.Trajectory) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return WriteCSV(file, traj)
}
