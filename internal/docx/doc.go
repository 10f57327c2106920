// Package docx writes Office Open XML WordprocessingML documents (.docx).
//
// A Document is an append-only sequence of headings, paragraphs and tables.
// Nothing is serialized until WriteTo or Save is called, which produces a
// ZIP package with these parts:
//
//	[Content_Types].xml
//	_rels/.rels
//	docProps/core.xml          title, creator, timestamps
//	docProps/app.xml           producing application
//	word/document.xml          body and section properties
//	word/styles.xml            style sheet (supplied by the caller)
//	word/numbering.xml         bullet and decimal list definitions
//	word/_rels/document.xml.rels
//
// The style sheet is supplied by the caller so that it can be loaded from
// embedded or user assets. It must define the style IDs referenced here:
// Heading1-Heading4, ListBullet, ListNumber and LightGridAccent1.
package docx
