// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package phpname provides the name classification and qualification rules
// shared by the synthesizer, the catalog and the facade updater.
package phpname

import "strings"

// Built-in type keywords that never name a class.
const (
	TypeInt      = "int"
	TypeFloat    = "float"
	TypeString   = "string"
	TypeBool     = "bool"
	TypeArray    = "array"
	TypeIterable = "iterable"
	TypeCallable = "callable"
	TypeObject   = "object"
	TypeMixed    = "mixed"
	TypeVoid     = "void"
	TypeNever    = "never"
	TypeNull     = "null"
	TypeFalse    = "false"
	TypeTrue     = "true"
	TypeSelf     = "self"
	TypeStatic   = "static"
	TypeParent   = "parent"
)

var scalarTypes = map[string]bool{
	TypeInt:      true,
	TypeFloat:    true,
	TypeString:   true,
	TypeBool:     true,
	TypeArray:    true,
	TypeIterable: true,
	TypeCallable: true,
	TypeObject:   true,
	TypeMixed:    true,
	TypeVoid:     true,
	TypeNever:    true,
	TypeNull:     true,
	TypeFalse:    true,
	TypeTrue:     true,
	TypeSelf:     true,
	TypeStatic:   true,
	TypeParent:   true,
}

// IsBuiltinType reports whether name is a type keyword rather than a class.
// The comparison is case-insensitive.
func IsBuiltinType(name string) bool {
	return scalarTypes[strings.ToLower(name)]
}

// builtinClasses lists the global-namespace classes the runtime always
// provides. Interfaces and traits are left out: they are not classes for the
// purpose of class existence checks.
var builtinClasses = map[string]bool{}

func init() {
	for _, name := range []string{
		"stdClass", "Closure", "Generator", "WeakMap", "WeakReference", "Fiber",
		"ArrayObject", "ArrayIterator", "RecursiveArrayIterator", "IteratorIterator",
		"SplObjectStorage", "SplStack", "SplQueue", "SplFixedArray", "SplDoublyLinkedList",
		"SplPriorityQueue", "SplHeap", "SplMinHeap", "SplMaxHeap",
		"SplFileInfo", "SplFileObject", "SplTempFileObject", "DirectoryIterator",
		"DateTime", "DateTimeImmutable", "DateTimeZone", "DateInterval", "DatePeriod",
		"Exception", "ErrorException", "Error", "TypeError", "ValueError", "ArithmeticError",
		"DivisionByZeroError", "ArgumentCountError", "AssertionError", "UnhandledMatchError",
		"LogicException", "BadFunctionCallException", "BadMethodCallException",
		"DomainException", "InvalidArgumentException", "LengthException", "OutOfRangeException",
		"RuntimeException", "OutOfBoundsException", "OverflowException", "RangeException",
		"UnderflowException", "UnexpectedValueException", "JsonException",
		"PDO", "PDOStatement", "PDOException", "SimpleXMLElement",
		"DOMDocument", "DOMElement", "DOMNode", "DOMXPath",
		"ReflectionClass", "ReflectionMethod", "ReflectionFunction", "ReflectionProperty",
		"ReflectionParameter", "ReflectionNamedType", "ReflectionException",
	} {
		builtinClasses[strings.ToLower(name)] = true
	}
}

// IsBuiltinClass reports whether name is a class the runtime provides.
// A leading namespace separator is ignored and the comparison is
// case-insensitive.
func IsBuiltinClass(name string) bool {
	return builtinClasses[Key(name)]
}
