package export

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/pkg/errors"

	"github.com/san-kum/moons/internal/dataset"
)

// FormatCoord renders a coordinate as the shortest decimal that round-trips
// a float32, without an exponent.
func FormatCoord(v float32) string {
	return strconv.FormatFloat(float64(v), 'f', -1, 32)
}

// WriteCSV writes one "x,y,label" line per sample in index order. No header.
func WriteCSV(w io.Writer, ds *dataset.Dataset) error {
	if len(ds.Samples) != len(ds.Labels) {
		return errors.Errorf("export: %d samples but %d labels", len(ds.Samples), len(ds.Labels))
	}

	cw := csv.NewWriter(w)
	row := make([]string, 3)
	for i, s := range ds.Samples {
		row[0] = FormatCoord(s.X)
		row[1] = FormatCoord(s.Y)
		row[2] = strconv.Itoa(int(ds.Labels[i]))
		if err := cw.Write(row); err != nil {
			return errors.Wrapf(err, "export: write row %d", i)
		}
	}
	cw.Flush()
	return errors.Wrap(cw.Error(), "export: flush")
}

// ReadCSV parses the output of WriteCSV.
func ReadCSV(r io.Reader) (*dataset.Dataset, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = 3
	cr.ReuseRecord = true

	ds := &dataset.Dataset{}
	for line := 1; ; line++ {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "export: read")
		}

		x, err := strconv.ParseFloat(record[0], 32)
		if err != nil {
			return nil, errors.Wrapf(err, "export: line %d: x", line)
		}
		y, err := strconv.ParseFloat(record[1], 32)
		if err != nil {
			return nil, errors.Wrapf(err, "export: line %d: y", line)
		}
		l, err := strconv.Atoi(record[2])
		if err != nil {
			return nil, errors.Wrapf(err, "export: line %d: label", line)
		}

		ds.Samples = append(ds.Samples, dataset.Sample{X: float32(x), Y: float32(y)})
		ds.Labels = append(ds.Labels, dataset.Label(l))
	}

	if err := ds.Validate(); err != nil {
		return nil, errors.Wrap(err, "export")
	}
	return ds, nil
}
