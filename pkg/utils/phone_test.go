package utils

import "testing"

func TestSanitizePhone(t *testing.T) {
	type args struct {
		phone string
	}
	tests := []struct {
		name string
		args args
		want string
	}{
		{name: "digits_only", args: args{phone: "9876543210"}, want: "9876543210"},
		{name: "spaces_and_dashes", args: args{phone: "98-76 54(32)10"}, want: "9876543210"},
		{name: "country_code_plus", args: args{phone: "+919876543210"}, want: "919876543210"},
		{name: "letters", args: args{phone: "98abc76"}, want: "9876"},
		{name: "empty", args: args{phone: ""}, want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SanitizePhone(tt.args.phone); got != tt.want {
				t.Errorf("SanitizePhone() got = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestValidPhone(t *testing.T) {
	type args struct {
		digits string
	}
	tests := []struct {
		name string
		args args
		want bool
	}{
		{name: "national_number", args: args{digits: "9876543210"}, want: true},
		{name: "with_country_code", args: args{digits: "919876543210"}, want: true},
		{name: "max_country_code", args: args{digits: "998769876543210"}, want: true},
		{name: "too_short", args: args{digits: "98765"}, want: false},
		{name: "too_long", args: args{digits: "9987698765432101"}, want: false},
		{name: "empty", args: args{digits: ""}, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidPhone(tt.args.digits); got != tt.want {
				t.Errorf("ValidPhone() got = %v, want %v", got, tt.want)
			}
		})
	}
}
