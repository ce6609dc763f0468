// Copyright (c) 2023-2025 RapidaAI
// Author: Prashant Srivastav <prashant@rapida.ai>
//
// Licensed under GPL-2.0 with Rapida Additional Terms.
// See LICENSE.md or contact sales@rapida.ai for commercial usage.

package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// Option is a loosely typed bag of settings keyed by dotted names such as
// "normalizer.locale".
type Option map[string]interface{}

func (o Option) GetString(key string) (string, error) {
	v, ok := o[key]
	if !ok {
		return "", fmt.Errorf("option %s not found", key)
	}
	switch val := v.(type) {
	case string:
		return val, nil
	case fmt.Stringer:
		return val.String(), nil
	default:
		return "", fmt.Errorf("option %s is not a string", key)
	}
}

func (o Option) GetUint64(key string) (uint64, error) {
	v, ok := o[key]
	if !ok {
		return 0, fmt.Errorf("option %s not found", key)
	}
	switch val := v.(type) {
	case uint64:
		return val, nil
	case int:
		if val < 0 {
			return 0, fmt.Errorf("option %s is negative", key)
		}
		return uint64(val), nil
	case float64:
		if val < 0 {
			return 0, fmt.Errorf("option %s is negative", key)
		}
		return uint64(val), nil
	case string:
		return strconv.ParseUint(strings.TrimSpace(val), 10, 64)
	default:
		return 0, fmt.Errorf("option %s is not numeric", key)
	}
}

func (o Option) GetBool(key string) (bool, error) {
	v, ok := o[key]
	if !ok {
		return false, fmt.Errorf("option %s not found", key)
	}
	switch val := v.(type) {
	case bool:
		return val, nil
	case string:
		return strconv.ParseBool(strings.TrimSpace(val))
	default:
		return false, fmt.Errorf("option %s is not a bool", key)
	}
}
