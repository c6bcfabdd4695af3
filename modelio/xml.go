package modelio

import (
	"encoding/xml"
	"fmt"
	"io"

	"github.com/tubs-alg/samplns-go/feature"
	"github.com/tubs-alg/samplns-go/preprocess"
	"github.com/tubs-alg/samplns-go/samplnserr"
)

// structNode is one <and>/<or>/<alt>/<feature> element inside <struct>,
// decoded generically since the child tag name carries the variant.
type structNode struct {
	tag       string
	name      string
	mandatory bool
	children  []structNode
}

func (n *structNode) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	n.tag = start.Name.Local
	for _, a := range start.Attr {
		switch a.Name.Local {
		case "name":
			n.name = a.Value
		case "mandatory":
			n.mandatory = a.Value == "true"
		}
	}

	for {
		tok, err := d.Token()
		if err != nil {
			return err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "and", "or", "alt", "feature":
				var child structNode
				if err := d.DecodeElement(&child, &t); err != nil {
					return err
				}
				n.children = append(n.children, child)
			default:
				if err := d.Skip(); err != nil {
					return err
				}
			}
		case xml.EndElement:
			return nil
		}
	}
}

// structWrapper decodes <struct>, whose single child is the tree root.
type structWrapper struct {
	root *structNode
}

func (w *structWrapper) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	for {
		tok, err := d.Token()
		if err != nil {
			return err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			var n structNode
			if err := d.DecodeElement(&n, &t); err != nil {
				return err
			}
			w.root = &n
		case xml.EndElement:
			return nil
		}
	}
}

// ruleNode is one node of a <rule>'s expression tree: {conj, disj,
// not, var, imp, eq}. A var node's feature name is its text content.
type ruleNode struct {
	tag      string
	text     string
	children []ruleNode
}

func (n *ruleNode) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	n.tag = start.Name.Local

	for {
		tok, err := d.Token()
		if err != nil {
			return err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "conj", "disj", "not", "var", "imp", "eq":
				var child ruleNode
				if err := d.DecodeElement(&child, &t); err != nil {
					return err
				}
				n.children = append(n.children, child)
			default:
				if err := d.Skip(); err != nil {
					return err
				}
			}
		case xml.CharData:
			n.text += string(t)
		case xml.EndElement:
			return nil
		}
	}
}

type ruleWrapper struct {
	expr *ruleNode
}

func (w *ruleWrapper) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	for {
		tok, err := d.Token()
		if err != nil {
			return err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			var n ruleNode
			if err := d.DecodeElement(&n, &t); err != nil {
				return err
			}
			w.expr = &n
		case xml.EndElement:
			return nil
		}
	}
}

type featureModelXML struct {
	XMLName     xml.Name       `xml:"featureModel"`
	Struct      structWrapper  `xml:"struct"`
	Constraints *constraintsXML `xml:"constraints"`
}

type constraintsXML struct {
	Rules []ruleWrapper `xml:"rule"`
}

// ParseXML decodes a FeatureIDE-style XML feature model from r into a
// raw Instance. The root struct element is required; constraints are
// optional.
func ParseXML(r io.Reader) (*preprocess.Instance, error) {
	dec := xml.NewDecoder(r)
	dec.Strict = false

	var doc featureModelXML
	doc.XMLName = xml.Name{} // allow <featureModel> or <extendedFeatureModel>

	root := xml.Name{Local: "featureModel"}
	tok, err := nextStart(dec)
	if err != nil {
		return nil, fmt.Errorf("modelio: decode xml: %w", samplnserr.ErrMalformedInput)
	}
	if tok.Name.Local != "featureModel" && tok.Name.Local != "extendedFeatureModel" {
		return nil, fmt.Errorf("modelio: unexpected root element %q: %w", tok.Name.Local, samplnserr.ErrMalformedInput)
	}
	root = tok.Name

	if err := decodeFeatureModelBody(dec, &doc); err != nil {
		return nil, fmt.Errorf("modelio: decode %s: %w", root.Local, err)
	}

	if doc.Struct.root == nil {
		return nil, fmt.Errorf("modelio: missing <struct>: %w", samplnserr.ErrMalformedInput)
	}

	tree, err := buildTree(doc.Struct.root)
	if err != nil {
		return nil, err
	}

	var rules []feature.Formula
	if doc.Constraints != nil {
		for _, rw := range doc.Constraints.Rules {
			if rw.expr == nil {
				return nil, fmt.Errorf("modelio: <rule> has no expression: %w", samplnserr.ErrMalformedInput)
			}
			f, err := ruleToFormula(*rw.expr)
			if err != nil {
				return nil, err
			}
			rules = append(rules, f)
		}
	}

	return &preprocess.Instance{
		Name:      "xml",
		Features:  tree.ConcreteFeatures(),
		Structure: tree,
		Rules:     rules,
	}, nil
}

func nextStart(dec *xml.Decoder) (xml.StartElement, error) {
	for {
		tok, err := dec.Token()
		if err != nil {
			return xml.StartElement{}, err
		}
		if se, ok := tok.(xml.StartElement); ok {
			return se, nil
		}
	}
}

func decodeFeatureModelBody(dec *xml.Decoder, doc *featureModelXML) error {
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		se, ok := tok.(xml.StartElement)
		if !ok {
			if _, isEnd := tok.(xml.EndElement); isEnd {
				return nil
			}
			continue
		}
		switch se.Name.Local {
		case "struct":
			if err := dec.DecodeElement(&doc.Struct, &se); err != nil {
				return err
			}
		case "constraints":
			var c constraintsXML
			if err := dec.DecodeElement(&c, &se); err != nil {
				return err
			}
			doc.Constraints = &c
		default:
			if err := dec.Skip(); err != nil {
				return err
			}
		}
	}
}

func buildTree(root *structNode) (*feature.Tree, error) {
	var nodes []feature.Node
	var convert func(n structNode) (int, error)
	convert = func(n structNode) (int, error) {
		switch n.tag {
		case "feature":
			idx := len(nodes)
			nodes = append(nodes, feature.Node{
				Kind:      feature.KindConcrete,
				Literal:   feature.Literal{Var: n.name},
				Mandatory: n.mandatory,
			})

			return idx, nil
		case "and", "or", "alt":
			children := make([]int, 0, len(n.children))
			for _, c := range n.children {
				ci, err := convert(c)
				if err != nil {
					return 0, err
				}
				children = append(children, ci)
			}
			idx := len(nodes)
			nodes = append(nodes, feature.Node{
				Kind:      structKind(n.tag),
				Literal:   feature.Literal{Var: n.name},
				Mandatory: n.mandatory,
				Children:  children,
			})

			return idx, nil
		default:
			return 0, fmt.Errorf("modelio: unknown struct element %q: %w", n.tag, samplnserr.ErrMalformedInput)
		}
	}

	rootIdx, err := convert(*root)
	if err != nil {
		return nil, err
	}

	return feature.NewTree(nodes, rootIdx), nil
}

func structKind(tag string) feature.NodeKind {
	switch tag {
	case "and":
		return feature.KindAnd
	case "or":
		return feature.KindOr
	default:
		return feature.KindAlt
	}
}

func ruleToFormula(n ruleNode) (feature.Formula, error) {
	switch n.tag {
	case "var":
		return &feature.VarF{Name: trimSpace(n.text)}, nil
	case "not":
		if len(n.children) != 1 {
			return nil, fmt.Errorf("modelio: <not> requires exactly one child: %w", samplnserr.ErrMalformedInput)
		}
		inner, err := ruleToFormula(n.children[0])
		if err != nil {
			return nil, err
		}

		return feature.Not(inner), nil
	case "conj":
		return combineRule(n.children, func(fs ...feature.Formula) (feature.Formula, error) { return feature.NewAnd(fs...) })
	case "disj":
		return combineRule(n.children, func(fs ...feature.Formula) (feature.Formula, error) { return feature.NewOr(fs...) })
	case "imp":
		if len(n.children) != 2 {
			return nil, fmt.Errorf("modelio: <imp> requires exactly two children: %w", samplnserr.ErrMalformedInput)
		}
		cond, err := ruleToFormula(n.children[0])
		if err != nil {
			return nil, err
		}
		impl, err := ruleToFormula(n.children[1])
		if err != nil {
			return nil, err
		}

		return feature.NewImpl(cond, impl), nil
	case "eq":
		if len(n.children) != 2 {
			return nil, fmt.Errorf("modelio: <eq> requires exactly two children: %w", samplnserr.ErrMalformedInput)
		}
		a, err := ruleToFormula(n.children[0])
		if err != nil {
			return nil, err
		}
		b, err := ruleToFormula(n.children[1])
		if err != nil {
			return nil, err
		}

		return feature.NewEq(a, b), nil
	default:
		return nil, fmt.Errorf("modelio: unknown rule element %q: %w", n.tag, samplnserr.ErrMalformedInput)
	}
}

func combineRule(children []ruleNode, build func(...feature.Formula) (feature.Formula, error)) (feature.Formula, error) {
	if len(children) < 2 {
		return nil, fmt.Errorf("modelio: expected >= 2 operands: %w", samplnserr.ErrMalformedInput)
	}
	formulas := make([]feature.Formula, len(children))
	for i, c := range children {
		f, err := ruleToFormula(c)
		if err != nil {
			return nil, err
		}
		formulas[i] = f
	}

	return build(formulas...)
}

func trimSpace(s string) string {
	start, end := 0, len(s)
	for start < end && isSpace(s[start]) {
		start++
	}
	for end > start && isSpace(s[end-1]) {
		end--
	}

	return s[start:end]
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}
