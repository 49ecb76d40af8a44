// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

/*
Package coverage rewrites a Cobertura coverage report so that its package and class
names line up with the repository layout the CI pipeline expects.
*/
package coverage

import (
	"github.com/beevik/etree"
	"github.com/pkg/errors"
)

const (
	// PackagePrefix is prepended to every package name
	PackagePrefix = "server."

	// ClassPrefix is prepended to every class name
	ClassPrefix = "cama_backend."

	// FilenamePrefix is prepended to every class filename
	FilenamePrefix = "cama_backend/"

	// DefaultFile is the report rewritten when no path is given
	DefaultFile = "coverage.xml"
)

var (
	ErrNoPackages       = errors.New("no packages element in coverage report")
	ErrNoClasses        = errors.New("package has no classes element")
	ErrMissingAttribute = errors.New("element is missing a rewritten attribute")
)

// Summary counts what a rewrite touched
type Summary struct {
	Packages int
	Classes  int
}

func prefix(e *etree.Element, key, p string) error {
	a := e.SelectAttr(key)
	if a == nil {
		return errors.WithMessagef(ErrMissingAttribute, "<%s> has no %s", e.Tag, key)
	}

	a.Value = p + a.Value
	return nil
}

// Rewrite prefixes every package and class under the first packages element of doc.
// Elements are modified in place, in document order.  Rewriting the same document
// twice applies the prefixes twice.  A package without a name, or a class without a
// name or filename, fails the rewrite with ErrMissingAttribute.
func Rewrite(doc *etree.Document) (Summary, error) {
	var s Summary
	packages := doc.FindElement(".//packages")
	if packages == nil {
		return s, ErrNoPackages
	}

	for _, p := range packages.ChildElements() {
		if err := prefix(p, "name", PackagePrefix); err != nil {
			return s, err
		}

		s.Packages++
		classes := p.SelectElement("classes")
		if classes == nil {
			return s, errors.WithMessagef(ErrNoClasses, "package %q", p.SelectAttrValue("name", ""))
		}

		for _, c := range classes.ChildElements() {
			if err := prefix(c, "name", ClassPrefix); err != nil {
				return s, errors.WithMessagef(err, "package %q", p.SelectAttrValue("name", ""))
			}

			if err := prefix(c, "filename", FilenamePrefix); err != nil {
				return s, errors.WithMessagef(err, "package %q", p.SelectAttrValue("name", ""))
			}

			s.Classes++
		}
	}

	return s, nil
}

// RewriteFile rewrites the report at path, replacing the file's contents.  The file is
// left untouched if the report cannot be read or rewritten.
func RewriteFile(path string) (Summary, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromFile(path); err != nil {
		return Summary{}, errors.Wrapf(err, "unable to read %s", path)
	}

	s, err := Rewrite(doc)
	if err != nil {
		return s, errors.WithMessage(err, path)
	}

	if err := doc.WriteToFile(path); err != nil {
		return s, errors.Wrapf(err, "unable to write %s", path)
	}

	return s, nil
}
