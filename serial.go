// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fifoq

import "code.hybscloud.com/atomix"

// Serial identifies a pipe handle within the process.
// Queues and Readers draw from one increasing sequence.
type Serial = uint32

var handleSerials atomix.Uint32

func nextSerial() Serial {
	return handleSerials.Add(1)
}
