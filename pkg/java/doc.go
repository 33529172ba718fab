// SPDX-License-Identifier: MPL-2.0

// Package java defines the domain model for discovered Java runtimes:
// parsed version numbers, architecture and installation-kind enums, the
// Installation record produced by probing, and constraint matching used
// when selecting an installation. It also provides process execution
// against an installation's launcher binary.
package java
