/*
Package id3 grows ID3 decision trees from datasets of discrete values.

A tree is grown by picking, among the candidate features, the one whose
split of the dataset yields the greatest information gain on the target,
and growing a subtree from the rows taking each of its values without
that feature. Leaves predict the target value shared by all their rows,
or the most frequent one when no candidates are left.
*/
package id3
