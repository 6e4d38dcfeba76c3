package csvfile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/jhoicas/Nomina-api/internal/domain"
	"github.com/jhoicas/Nomina-api/internal/domain/entity"
	"github.com/jhoicas/Nomina-api/internal/domain/repository"
)

// FileStore implementa repository.EmployeeStore sobre un archivo CSV.
// Save trunca y reescribe en el lugar (sin rename atómico): el último que escribe gana.
type FileStore struct {
	path string
}

var _ repository.EmployeeStore = (*FileStore)(nil)

// NewFileStore construye el store para la ruta indicada.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Path ruta del archivo de datos.
func (s *FileStore) Path() string { return s.path }

// Load lee todas las filas. Las filas mal formadas se cuentan y se descartan.
func (s *FileStore) Load() (*repository.LoadResult, error) {
	f, err := os.Open(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &repository.LoadResult{}, fmt.Errorf("%w: %s", domain.ErrDataFileMissing, s.path)
		}
		return nil, fmt.Errorf("%w: %w", domain.ErrDataFileRead, err)
	}
	defer f.Close()

	res, err := ReadRows(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrDataFileRead, err)
	}
	return res, nil
}

// MaxLineBytes largo máximo de una fila; una línea más larga se descarta como mal formada.
const MaxLineBytes = 1 << 20

// ReadRows decodifica un flujo completo: ignora líneas vacías, descarta el
// encabezado solo si es la primera línea con datos y tolera BOM UTF-8 y CRLF.
// Una línea que excede MaxLineBytes se cuenta en Skipped y la carga sigue.
func ReadRows(r io.Reader) (*repository.LoadResult, error) {
	br := bufio.NewReader(transform.NewReader(r, unicode.BOMOverride(transform.Nop)))

	res := &repository.LoadResult{}
	first := true
	for {
		raw, err := br.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, err
		}
		if raw != "" {
			line := strings.TrimRight(raw, "\r\n")
			switch {
			case line == "":
			case len(line) > MaxLineBytes:
				first = false
				res.Skipped++
			default:
				cols := SplitRow(line)
				if first {
					first = false
					if IsHeader(cols) {
						break
					}
				}
				if e, ok := DecodeRow(cols); ok {
					res.Employees = append(res.Employees, e)
				} else {
					res.Skipped++
				}
			}
		}
		if err != nil {
			return res, nil
		}
	}
}

// Save reescribe el archivo: encabezado y una fila por empleado en el orden dado.
func (s *FileStore) Save(employees []*entity.Employee) error {
	if dir := filepath.Dir(s.path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("%w: %w", domain.ErrDataFileWrite, err)
		}
	}
	f, err := os.Create(s.path)
	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrDataFileWrite, err)
	}
	if err := WriteRows(f, employees); err != nil {
		_ = f.Close()
		return fmt.Errorf("%w: %w", domain.ErrDataFileWrite, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrDataFileWrite, err)
	}
	return nil
}

// WriteRows escribe encabezado y filas en w.
func WriteRows(w io.Writer, employees []*entity.Employee) error {
	bw := bufio.NewWriter(w)
	if _, err := bw.WriteString(Header + "\n"); err != nil {
		return err
	}
	for _, e := range employees {
		if _, err := bw.WriteString(EncodeRow(e) + "\n"); err != nil {
			return err
		}
	}
	return bw.Flush()
}
