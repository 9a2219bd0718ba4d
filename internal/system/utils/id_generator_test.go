/*
 * Copyright (c) 2026, eVote NG (https://evote.ng).
 *
 * eVote NG licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

package utils

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGenerateUUID(t *testing.T) {
	id := GenerateUUID()
	assert.True(t, IsValidUUID(id))
	assert.NotEqual(t, id, GenerateUUID())
}

func TestIsValidUUID(t *testing.T) {
	assert.True(t, IsValidUUID("90f1b9c2-6d1e-4c2b-9a4c-1f2e3d4c5b6a"))
	assert.False(t, IsValidUUID("not-a-uuid"))
	assert.False(t, IsValidUUID(""))
}

func TestGenerateApplicationRef(t *testing.T) {
	pattern := regexp.MustCompile(`^EV-2026-\d{6}$`)
	now := time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC)
	for i := 0; i < 10; i++ {
		assert.Regexp(t, pattern, GenerateApplicationRef(now))
	}
}
