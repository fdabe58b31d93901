// Copyright (C) 2023 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

// Package core contains the most basic objects of drumgen.
// These are bit sequences holding rhythmic patterns, instruments and the
// error values shared by all packages.
package core
