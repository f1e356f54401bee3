// Copyright 2026 The Loom Authors
// SPDX-License-Identifier: Apache-2.0

// Package wire defines the CBOR-encoded message types exchanged with
// the compositor over the layout session, and the serializer that
// normalizes a layout tree into its wire form. The engine and the
// compositor both speak these types, so they are defined once here
// rather than mirrored — the same role lib/codec plays for the
// encoding itself.
//
// Serialization is where optional tree fields collapse to their
// defaults: an unset traversal index becomes 0, an unset size
// proportion becomes 1.0, an unset direction becomes ROW, and absent
// gaps become zero on all four sides. Serialization never fails.
package wire
