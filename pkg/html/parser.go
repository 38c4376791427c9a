package html

import "fmt"

type Parser struct {
	tokenizer *Tokenizer
	doc       *Document
	stack     []*Node // stack of open elements
}

func NewParser(html string) *Parser {
	return &Parser{
		tokenizer: NewTokenizer(html),
		doc:       NewDocument(),
	}
}

func (p *Parser) Parse() (*Document, error) {
	p.stack = []*Node{p.doc.Root}

	for {
		token, err := p.tokenizer.NextToken()
		if err != nil {
			return nil, fmt.Errorf("tokenizer error: %w", err)
		}
		if token.Type == TokenEOF {
			break
		}

		switch token.Type {
		case TokenStartTag:
			// <script> bodies are raw text and never enter the tree;
			// they are collected for the scripting layer.
			if token.TagName == "script" {
				p.doc.Scripts = append(p.doc.Scripts, p.tokenizer.ReadRawUntil("script"))
				continue
			}

			node := NewElement(token.TagName)
			// Apply attributes in source order through the attribute
			// layer so a parsed disabled attribute initializes state
			// the same way a scripted one does.
			for _, name := range token.AttrOrder {
				node.SetAttribute(name, token.Attributes[name])
			}

			parent := p.currentParent()
			parent.AddChild(node)

			if !isVoidElement(token.TagName) && !token.SelfClosing {
				p.push(node)
			}

		case TokenText:
			if token.Text != "" {
				parent := p.currentParent()
				parent.AppendText(token.Text)
			}

		case TokenEndTag:
			p.closeTag(token.TagName)
		}
	}

	return p.doc, nil
}

// currentParent returns the current parent node (top of stack)
func (p *Parser) currentParent() *Node {
	if len(p.stack) == 0 {
		return p.doc.Root
	}
	return p.stack[len(p.stack)-1]
}

// push adds a node to the stack
func (p *Parser) push(node *Node) {
	p.stack = append(p.stack, node)
}

// closeTag pops the stack until the matching tag is found and closed
func (p *Parser) closeTag(tagName string) {
	for i := len(p.stack) - 1; i >= 1; i-- {
		if p.stack[i].TagName == tagName {
			p.stack = p.stack[:i]
			return
		}
	}
	// Tag not found on stack; ignore the end tag
}

// Forms returns the document's form elements in tree order.
func (d *Document) Forms() []*Node {
	var out []*Node
	Walk(d.Root, func(n *Node) bool {
		if n.Kind == KindForm {
			out = append(out, n)
		}
		return false
	})
	return out
}

// Controls returns every form control in the document in tree order.
func (d *Document) Controls() []*Node {
	var out []*Node
	Walk(d.Root, func(n *Node) bool {
		if n.IsFormControl() {
			out = append(out, n)
		}
		return false
	})
	return out
}

func Parse(html string) (*Document, error) {
	parser := NewParser(html)
	return parser.Parse()
}
