package dat

import (
	"encoding/xml"
	"io"
	"strconv"
)

// headerFields fixes the serialization order of the header block.
// Downstream tools parse the header positionally, so this order is part of
// the output contract.
func headerFields(h Header) [][2]string {
	return [][2]string{
		{"name", h.Name},
		{"description", h.Description},
		{"category", h.Category},
		{"version", h.Version},
		{"date", h.Date},
		{"author", h.Author},
		{"comment", h.Comment},
		{"url", h.URL},
	}
}

// WriteXML renders the finished catalog to w as a <datafile> document:
// XML declaration, header block, then the category/game/rom tree depth-first
// in builder order. It is a pure function of the catalog; no classification
// or mutation happens here.
func WriteXML(w io.Writer, c *Catalog) error {
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}

	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")

	datafile := xml.StartElement{Name: xml.Name{Local: "datafile"}}
	if err := enc.EncodeToken(datafile); err != nil {
		return err
	}
	if err := writeHeader(enc, c.Header); err != nil {
		return err
	}
	for _, n := range c.Children {
		if err := writeNode(enc, n); err != nil {
			return err
		}
	}
	if err := enc.EncodeToken(datafile.End()); err != nil {
		return err
	}
	return enc.Flush()
}

func writeHeader(enc *xml.Encoder, h Header) error {
	header := xml.StartElement{Name: xml.Name{Local: "header"}}
	if err := enc.EncodeToken(header); err != nil {
		return err
	}
	for _, f := range headerFields(h) {
		if f[1] == "" {
			continue
		}
		if err := writeTextElement(enc, f[0], f[1]); err != nil {
			return err
		}
	}
	if h.ForcePacking != PackingUnset {
		rv := xml.StartElement{
			Name: xml.Name{Local: "romvault"},
			Attr: []xml.Attr{attr("forcepacking", string(h.ForcePacking))},
		}
		if err := enc.EncodeToken(rv); err != nil {
			return err
		}
		if err := enc.EncodeToken(rv.End()); err != nil {
			return err
		}
	}
	return enc.EncodeToken(header.End())
}

func writeNode(enc *xml.Encoder, n Node) error {
	switch t := n.(type) {
	case *Category:
		dir := xml.StartElement{
			Name: xml.Name{Local: "dir"},
			Attr: []xml.Attr{attr("name", t.Name)},
		}
		if err := enc.EncodeToken(dir); err != nil {
			return err
		}
		for _, child := range t.Children {
			if err := writeNode(enc, child); err != nil {
				return err
			}
		}
		return enc.EncodeToken(dir.End())
	case *Group:
		game := xml.StartElement{
			Name: xml.Name{Local: "game"},
			Attr: []xml.Attr{attr("name", t.Name)},
		}
		if err := enc.EncodeToken(game); err != nil {
			return err
		}
		for _, rec := range t.Records {
			rom := xml.StartElement{
				Name: xml.Name{Local: "rom"},
				Attr: []xml.Attr{
					attr("name", rec.Name),
					attr("size", strconv.FormatInt(rec.Size, 10)),
					attr("crc", rec.CRC32),
					attr("md5", rec.MD5),
					attr("sha1", rec.SHA1),
				},
			}
			if err := enc.EncodeToken(rom); err != nil {
				return err
			}
			if err := enc.EncodeToken(rom.End()); err != nil {
				return err
			}
		}
		return enc.EncodeToken(game.End())
	}
	return nil
}

func writeTextElement(enc *xml.Encoder, name, value string) error {
	el := xml.StartElement{Name: xml.Name{Local: name}}
	if err := enc.EncodeToken(el); err != nil {
		return err
	}
	if err := enc.EncodeToken(xml.CharData(value)); err != nil {
		return err
	}
	return enc.EncodeToken(el.End())
}

func attr(name, value string) xml.Attr {
	return xml.Attr{Name: xml.Name{Local: name}, Value: value}
}
