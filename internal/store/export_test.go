package store

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"testing"

	"github.com/BanaanKiamanesh/Shilling/internal/ode"
)

func sampleTrajectory() *ode.Trajectory {
	traj := ode.NewTrajectory(3)
	traj.Set(0, 0.0, ode.State{1, 0})
	traj.Set(1, 0.5, ode.State{0.8, -0.4})
	traj.Set(2, 1.0, ode.State{0.5, -0.7})
	return traj
}

func TestWriteJSON(t *testing.T) {
	meta := RunMeta{
		Problem: "oscillator",
		Method:  "rk4",
		Order:   4,
		Stages:  4,
		Dt:      0.5,
		T0:      0,
		Tf:      1,
	}

	var buf bytes.Buffer
	if err := WriteJSON(&buf, meta, sampleTrajectory()); err != nil {
		t.Fatal(err)
	}

	var got struct {
		RunMeta
		Samples int         `json:"samples"`
		Times   []float64   `json:"times"`
		States  [][]float64 `json:"states"`
	}
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatal(err)
	}
	if got.Method != "rk4" || got.Order != 4 {
		t.Errorf("meta round trip: got %+v", got.RunMeta)
	}
	if got.Samples != 3 || len(got.Times) != 3 || len(got.States) != 3 {
		t.Fatalf("sample counts: %d times, %d states, samples field %d",
			len(got.Times), len(got.States), got.Samples)
	}
	if got.Times[1] != 0.5 || got.States[2][1] != -0.7 {
		t.Errorf("payload mismatch: times %v, states %v", got.Times, got.States)
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, sampleTrajectory()); err != nil {
		t.Fatal(err)
	}

	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 4 {
		t.Fatalf("got %d rows, want header + 3 samples", len(rows))
	}
	if rows[0][0] != "t" || rows[0][1] != "y0" || rows[0][2] != "y1" {
		t.Errorf("header = %v", rows[0])
	}
	if rows[2][0] != "0.5" || rows[2][2] != "-0.4" {
		t.Errorf("second sample row = %v", rows[2])
	}
}

func TestWriteCSVEmptyTrajectory(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, ode.NewTrajectory(0)); err != nil {
		t.Fatal(err)
	}
	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 1 || rows[0][0] != "t" {
		t.Errorf("want a lone header row, got %v", rows)
	}
}
