package math

// Mat3 is a 3x3 matrix in column-major order, used for transforming
// normals without picking up translation.
type Mat3 [9]float32

// Identity3 returns an identity 3x3 matrix.
func Identity3() Mat3 {
	return Mat3{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	}
}

// MulVec3 multiplies the matrix by a Vec3.
func (m Mat3) MulVec3(v Vec3) Vec3 {
	return Vec3{
		m[0]*v.X + m[3]*v.Y + m[6]*v.Z,
		m[1]*v.X + m[4]*v.Y + m[7]*v.Z,
		m[2]*v.X + m[5]*v.Y + m[8]*v.Z,
	}
}

// Mat3 returns the upper-left 3x3 portion of the matrix.
func (m Mat4) Mat3() Mat3 {
	return Mat3{
		m[0], m[1], m[2],
		m[4], m[5], m[6],
		m[8], m[9], m[10],
	}
}

// NormalMatrix returns the matrix that transforms normals for the given
// model matrix: the inverse transpose of its upper-left 3x3. Using the raw
// model matrix would skew normals under non-uniform scale.
func NormalMatrix(model Mat4) Mat3 {
	return model.Inverse().Transpose().Mat3()
}
