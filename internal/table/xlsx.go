package table

import (
	"archive/zip"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path"
	"path/filepath"
	"strconv"
	"strings"
)

type xlsxLoader struct{}

func (xlsxLoader) CanLoad(name string) bool {
	return strings.HasSuffix(strings.ToLower(name), ".xlsx")
}

// Read returns every physical row of the selected sheet. Rows absent from the
// sheet XML come back empty so SkipRows counts match the workbook.
func (xlsxLoader) Read(name string, opt Options) ([][]string, error) {
	wb, err := openWorkbook(name)
	if err != nil {
		return nil, err
	}
	defer wb.Close()

	target, err := wb.sheetPath(opt.Sheet)
	if err != nil {
		return nil, err
	}
	rows, err := wb.rows(target)
	if err != nil {
		return nil, err
	}
	if opt.SkipRows >= len(rows) {
		return nil, nil
	}
	return rows[opt.SkipRows:], nil
}

type xlsLoader struct{}

func (xlsLoader) CanLoad(name string) bool {
	return strings.HasSuffix(strings.ToLower(name), ".xls")
}

func (xlsLoader) Read(name string, _ Options) ([][]string, error) {
	return nil, fmt.Errorf("%w: legacy .xls workbook %s; save it as .xlsx", ErrUnsupportedFormat, filepath.Base(name))
}

// workbook is an open .xlsx package.
type workbook struct {
	zr     *zip.ReadCloser
	sheets []xmlSheetRef
	rels   map[string]string
	shared []string
}

type xmlSheetRef struct {
	Name string `xml:"name,attr"`
	RID  string `xml:"id,attr"`
}

type xmlWorkbook struct {
	Sheets []xmlSheetRef `xml:"sheets>sheet"`
}

type xmlRels struct {
	Rels []struct {
		ID     string `xml:"Id,attr"`
		Target string `xml:"Target,attr"`
	} `xml:"Relationship"`
}

// xmlText is rich or plain text: <t> directly or split across <r><t> runs.
type xmlText struct {
	T    string `xml:"t"`
	Runs []struct {
		T string `xml:"t"`
	} `xml:"r"`
}

func (x xmlText) String() string {
	if len(x.Runs) == 0 {
		return x.T
	}
	var b strings.Builder
	b.WriteString(x.T)
	for _, r := range x.Runs {
		b.WriteString(r.T)
	}
	return b.String()
}

type xmlSST struct {
	Items []xmlText `xml:"si"`
}

type xmlWorksheet struct {
	Rows []struct {
		R     int `xml:"r,attr"`
		Cells []struct {
			Ref    string  `xml:"r,attr"`
			Type   string  `xml:"t,attr"`
			Value  string  `xml:"v"`
			Inline xmlText `xml:"is"`
		} `xml:"c"`
	} `xml:"sheetData>row"`
}

func openWorkbook(name string) (*workbook, error) {
	zr, err := zip.OpenReader(name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) || errors.Is(err, fs.ErrPermission) {
			return nil, fmt.Errorf("%w: %v", ErrMissingSource, err)
		}
		return nil, fmt.Errorf("open xlsx: %w", err)
	}
	wb := &workbook{zr: zr, rels: map[string]string{}}

	var w xmlWorkbook
	if err := wb.decode("xl/workbook.xml", &w); err != nil {
		zr.Close()
		return nil, err
	}
	wb.sheets = w.Sheets

	var rels xmlRels
	if err := wb.decode("xl/_rels/workbook.xml.rels", &rels); err != nil {
		zr.Close()
		return nil, err
	}
	for _, r := range rels.Rels {
		if r.ID != "" && r.Target != "" {
			wb.rels[r.ID] = normalizeRelPath(r.Target)
		}
	}

	var sst xmlSST
	if err := wb.decode("xl/sharedStrings.xml", &sst); err != nil {
		zr.Close()
		return nil, err
	}
	for _, si := range sst.Items {
		wb.shared = append(wb.shared, si.String())
	}
	return wb, nil
}

func (wb *workbook) Close() error { return wb.zr.Close() }

// decode unmarshals a package part. A missing part leaves v untouched.
func (wb *workbook) decode(part string, v any) error {
	f, err := wb.zr.Open(part)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("open %s: %w", part, err)
	}
	defer f.Close()
	b, err := io.ReadAll(f)
	if err != nil {
		return fmt.Errorf("read %s: %w", part, err)
	}
	if err := xml.Unmarshal(b, v); err != nil {
		return fmt.Errorf("parse %s: %w", part, err)
	}
	return nil
}

// sheetPath resolves a sheet name (case-insensitive) or, when empty, the
// first sheet to its part path.
func (wb *workbook) sheetPath(sheet string) (string, error) {
	if sheet == "" {
		if len(wb.sheets) > 0 {
			if p, ok := wb.rels[wb.sheets[0].RID]; ok {
				return p, nil
			}
		}
		return "xl/worksheets/sheet1.xml", nil
	}
	names := make([]string, 0, len(wb.sheets))
	for _, s := range wb.sheets {
		if strings.EqualFold(s.Name, sheet) {
			if p, ok := wb.rels[s.RID]; ok {
				return p, nil
			}
		}
		names = append(names, s.Name)
	}
	return "", fmt.Errorf("sheet '%s' not found; available sheets: %s", sheet, strings.Join(names, ", "))
}

// rows reads a worksheet into physical rows, placing each cell by its
// reference and resolving shared and inline strings.
func (wb *workbook) rows(part string) ([][]string, error) {
	if _, err := fs.Stat(wb.zr, part); err != nil {
		return nil, fmt.Errorf("worksheet %s missing from workbook", part)
	}
	var ws xmlWorksheet
	if err := wb.decode(part, &ws); err != nil {
		return nil, err
	}
	var out [][]string
	for _, row := range ws.Rows {
		idx := len(out)
		if row.R > 0 {
			idx = row.R - 1
		}
		for len(out) < idx {
			out = append(out, nil)
		}
		var cells []string
		for _, c := range row.Cells {
			col := len(cells)
			if n := colIndexFromRef(c.Ref); n >= 0 {
				col = n
			}
			for len(cells) <= col {
				cells = append(cells, "")
			}
			cells[col] = wb.cellText(c.Type, c.Value, c.Inline)
		}
		if idx < len(out) {
			// rows listed out of order overwrite the placeholder
			out[idx] = cells
			continue
		}
		out = append(out, cells)
	}
	return out, nil
}

func (wb *workbook) cellText(typ, v string, inline xmlText) string {
	switch typ {
	case "s":
		i, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil || i < 0 || i >= len(wb.shared) {
			return ""
		}
		return wb.shared[i]
	case "inlineStr":
		return inline.String()
	}
	return v
}

// colIndexFromRef maps "C12" to 2. It returns -1 when ref has no column.
func colIndexFromRef(ref string) int {
	idx := 0
	n := 0
	for _, r := range strings.ToUpper(ref) {
		if r < 'A' || r > 'Z' {
			break
		}
		idx = idx*26 + int(r-'A'+1)
		n++
	}
	if n == 0 {
		return -1
	}
	return idx - 1
}

// normalizeRelPath turns a relationship target into a package part path.
func normalizeRelPath(rel string) string {
	if strings.HasPrefix(rel, "/") {
		return strings.TrimPrefix(rel, "/")
	}
	if strings.HasPrefix(rel, "xl/") {
		return rel
	}
	return path.Join("xl", rel)
}
