// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package unixaux

import (
	"encoding"
	"io/fs"
	"reflect"
	"strconv"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

// DefaultDecodeHooks is a viper option that sets the decode hooks needed
// to unmarshal the configuration types in this module.  This includes the
// hooks viper itself sets by default, plus hooks defined by this package.
//
// Note that you can still use ComposeDecodeHooks with this option as long
// as you use it after this one.
func DefaultDecodeHooks(dc *mapstructure.DecoderConfig) {
	dc.DecodeHook = mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
		StringToFileModeHookFunc,
		TextUnmarshalerHookFunc,
	)
}

// ComposeDecodeHooks adds more decode hook functions to mapstructure's
// DecoderConfig.  If there are already decode hooks, they are preserved
// and the given hooks are appended.
func ComposeDecodeHooks(fs ...mapstructure.DecodeHookFunc) viper.DecoderConfigOption {
	return func(dc *mapstructure.DecoderConfig) {
		if dc.DecodeHook != nil {
			dc.DecodeHook = mapstructure.ComposeDecodeHookFunc(
				append([]mapstructure.DecodeHookFunc{dc.DecodeHook},
					fs...,
				)...,
			)
		} else {
			dc.DecodeHook = mapstructure.ComposeDecodeHookFunc(fs...)
		}
	}
}

var (
	textUnmarshalerType = reflect.TypeOf((*encoding.TextUnmarshaler)(nil)).Elem()
	fileModeType        = reflect.TypeOf(fs.FileMode(0))
)

// StringToFileModeHookFunc is a mapstructure.DecodeHookFunc that converts
// strings into fs.FileMode values.  The string is interpreted as an octal
// integer, e.g. "0660", which is how socket file permissions are typically
// written in configuration.  Non-string sources and non-FileMode targets
// are passed through unmodified.
func StringToFileModeHookFunc(_, to reflect.Type, src any) (any, error) {
	text, ok := src.(string)
	if !ok || to != fileModeType {
		return src, nil
	}

	mode, err := strconv.ParseUint(text, 8, 32)
	if err != nil {
		return nil, err
	}

	return fs.FileMode(mode), nil
}

// TextUnmarshalerHookFunc is a mapstructure.DecodeHookFunc that honors the
// destination type's encoding.TextUnmarshaler implementation, using it to
// convert the src.  The src parameter must be a string, or else this
// function does not attempt any conversion.
//
// The to type may be a non-pointer type which implements
// encoding.TextUnmarshaler through a pointer receiver, which is by far the
// most common case and is how SocketPath participates in unmarshaling.
// Alternatively, to may be a pointer type which itself implements
// encoding.TextUnmarshaler, as happens with optional properties where a
// nil value means the property wasn't set.
//
// This function explicitly does not support more than one level of
// indirection, e.g. **T where *T implements encoding.TextUnmarshaler.
//
// In any case where this function does no conversion, it returns src and a
// nil error.  This is the contract required by mapstructure.DecodeHookFunc.
func TextUnmarshalerHookFunc(_, to reflect.Type, src any) (any, error) {
	if text, ok := src.(string); ok {
		switch {
		case to.Kind() != reflect.Ptr && reflect.PtrTo(to).Implements(textUnmarshalerType):
			ptr := reflect.New(to)
			tu := ptr.Interface().(encoding.TextUnmarshaler)
			err := tu.UnmarshalText([]byte(text))
			return ptr.Elem().Interface(), err

		case to.Kind() == reflect.Ptr && to.Elem().Kind() != reflect.Ptr && to.Implements(textUnmarshalerType):
			ptr := reflect.New(to.Elem()) // this will be the same type as "to"
			tu := ptr.Interface().(encoding.TextUnmarshaler)
			err := tu.UnmarshalText([]byte(text))
			return tu, err
		}
	}

	return src, nil
}
